package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "The Varches - art sketch storefront backend",
	Long: `The Varches backend serves the sketch catalog, takes customer orders
with inventory tracking, records inquiries, and exposes an admin surface
for catalog management, order fulfillment and reporting.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
