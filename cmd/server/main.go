package main

import "github.com/Mayank9336/TheVarches/internal/cmd"

func main() {
	cmd.Execute()
}
