package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"dasbor/adapters/postgres"
	"dasbor/app"
	"dasbor/internal/config"
	"dasbor/internal/errors"
	"dasbor/ports"
	"dasbor/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	var snapshots ports.SnapshotRepository
	if cfg.Database.URL != "" {
		db, err := initDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		snapshots = postgres.NewSnapshotRepository(db)
		log.Printf("Snapshot persistence enabled")
	} else {
		log.Printf("DATABASE_URL not set, snapshot persistence disabled")
	}

	if cfg.Profiling.Enabled {
		go func() {
			log.Printf("pprof listening on :%s", cfg.Profiling.Port)
			if err := http.ListenAndServe(":"+cfg.Profiling.Port, nil); err != nil {
				log.Printf("pprof server stopped: %v", err)
			}
		}()
	}

	service := app.NewDatasetService(cfg.Data, snapshots)

	server := ui.NewServer(service)
	if err := server.Initialize(); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDatabase connects to PostgreSQL and ensures the snapshot schema
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := postgres.EnsureSchema(db); err != nil {
		return nil, errors.Wrap(err, "failed to ensure schema")
	}

	return db, nil
}
