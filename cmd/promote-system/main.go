package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/mihailo/promptdeck-api/internal/config"
	"github.com/mihailo/promptdeck-api/internal/database"
)

// promote-system marks a template as a system template. The API itself
// never sets is_system; this tool is the only write path for it.
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-system <template-id>")
		os.Exit(1)
	}

	templateID, err := uuid.Parse(os.Args[1])
	if err != nil {
		log.Fatalf("Invalid template id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	result, err := db.Pool.Exec(ctx, `
		UPDATE templates SET is_system = TRUE, updated_at = NOW()
		WHERE id = $1
	`, templateID)
	if err != nil {
		log.Fatalf("Failed to update template: %v", err)
	}

	if result.RowsAffected() == 0 {
		log.Fatalf("No template found with id: %s", templateID)
	}

	fmt.Printf("Successfully promoted %s to system template\n", templateID)
}
