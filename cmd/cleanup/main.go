// Command cleanup prunes certification records whose owner no longer
// exists. User deletion is permanent and does not cascade, so orphaned
// records accumulate until this runs.
package main

import (
	"fmt"
	"log"

	"github.com/certitrack/backend/config"
	"github.com/certitrack/backend/database"
	"github.com/certitrack/backend/models"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	fmt.Println("Start cleanup...")

	result := db.Where("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Delete(&models.Record{})
	if result.Error != nil {
		log.Fatalf("Failed to delete orphaned records: %v", result.Error)
	}

	fmt.Printf("✅ Deleted %d orphaned records\n", result.RowsAffected)
	fmt.Println("🎉 Cleanup completed successfully")
}
