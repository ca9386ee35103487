package main

import (
	"log"

	"github.com/joho/godotenv"

	"dasbor/app"
	"dasbor/internal/config"
	"dasbor/ui"
)

// Headless variant: serves only the JSON API, no HTML dashboard and no
// snapshot persistence.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	service := app.NewDatasetService(cfg.Data, nil)

	api := ui.NewApp(service)
	if err := api.Run(cfg.Server.Port); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
