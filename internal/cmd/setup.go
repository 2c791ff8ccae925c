package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mayank9336/TheVarches/internal/auth"
	"github.com/Mayank9336/TheVarches/internal/config"
	"github.com/Mayank9336/TheVarches/internal/database"
	"github.com/Mayank9336/TheVarches/internal/store"
)

var (
	dropFirst bool
	skipAdmin bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the database schema and admin user",
	Long: `Creates the storefront tables (categories, sketches, orders,
order_items, inquiries, users) and the admin account configured under
auth.admin_email / auth.admin_password.

All schema statements are idempotent; running setup twice is safe.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	setupCmd.Flags().BoolVar(&skipAdmin, "schema-only", false, "Create schema only, skip the admin user")
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	if !skipAdmin {
		if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
			return fmt.Errorf("auth.admin_email and auth.admin_password must be configured")
		}

		fmt.Printf("👤 Creating admin user %s...\n", cfg.Auth.AdminEmail)
		hash, err := auth.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			return err
		}
		st := store.New(db)
		if err := st.UpsertAdmin(context.Background(), "admin", cfg.Auth.AdminEmail, hash); err != nil {
			return err
		}
	}

	fmt.Println("✅ Database setup complete!")
	return nil
}
