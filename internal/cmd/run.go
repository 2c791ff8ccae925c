package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mayank9336/TheVarches/internal/config"
	"github.com/Mayank9336/TheVarches/internal/database"
	"github.com/Mayank9336/TheVarches/internal/orders"
	"github.com/Mayank9336/TheVarches/internal/server"
	"github.com/Mayank9336/TheVarches/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront API server",
	Long: `Start the HTTP server serving the public catalog and order API
and the JWT-protected admin API.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🎨 The Varches API starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	st := store.New(db)
	assembler := orders.NewService(st)

	srv, err := server.NewServer(cfg, db, st, assembler)
	if err != nil {
		return fmt.Errorf("failed to set up server: %w", err)
	}

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
