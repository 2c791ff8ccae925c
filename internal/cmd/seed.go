package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mayank9336/TheVarches/internal/config"
	"github.com/Mayank9336/TheVarches/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the catalog with sample sketches",
	Long: `Inserts a handful of sample categories and sketches so the API
can be browsed locally without the admin UI.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding sample catalog...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("   🗂️  Creating categories...")
	if err := seedCategories(db); err != nil {
		return err
	}

	fmt.Println("   🖼️  Creating sketches...")
	if err := seedSketches(db); err != nil {
		return err
	}

	fmt.Println("✅ Seed complete!")
	return nil
}

func seedCategories(db *database.DB) error {
	categories := []struct {
		name, slug string
	}{
		{"Portraits", "portraits"},
		{"Landscapes", "landscapes"},
		{"Figure Studies", "figure-studies"},
		{"Architecture", "architecture"},
	}

	for _, c := range categories {
		if _, err := db.Exec(
			`INSERT IGNORE INTO categories (name, slug) VALUES (?, ?)`,
			c.name, c.slug); err != nil {
			return err
		}
	}
	return nil
}

func seedSketches(db *database.DB) error {
	sketches := []struct {
		title, slug, medium, dimensions string
		price                           string
		stock                           int
		featured                        bool
	}{
		{"Morning Light Study", "landscapes", "Graphite", "21x30cm", "85.00", 1, true},
		{"Old Town Alley", "architecture", "Ink", "30x40cm", "120.00", 1, false},
		{"Seated Figure No. 4", "figure-studies", "Charcoal", "30x40cm", "150.00", 1, true},
		{"Portrait of a Stranger", "portraits", "Graphite", "21x30cm", "95.00", 2, false},
		{"Harbour at Dusk", "landscapes", "Ink and wash", "40x50cm", "210.00", 1, false},
	}

	for _, s := range sketches {
		if _, err := db.Exec(`
			INSERT INTO sketches (title, price, category_id, medium, dimensions, stock_qty, is_featured)
			SELECT ?, ?, c.id, ?, ?, ?, ? FROM categories c WHERE c.slug = ?`,
			s.title, s.price, s.medium, s.dimensions, s.stock, s.featured, s.slug); err != nil {
			return err
		}
	}
	return nil
}
