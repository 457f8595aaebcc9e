// Command migrate applies the database schema.
package main

import (
	"log"

	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/observability"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	observability.ConfigureLogger(cfg.LogLevel)

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.ApplySchema(db); err != nil {
		log.Fatalf("Schema migration failed: %v", err)
	}

	log.Println("Schema migration completed")
}
