package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pecheck/internal/background"
	"pecheck/internal/config"
	"pecheck/internal/db"
	"pecheck/internal/jobs"
	"pecheck/internal/matcher"
	"pecheck/internal/metrics"
	"pecheck/internal/registry"
	"pecheck/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database (optional)
	var database *db.DB
	if cfg.HasDatabase() {
		var err error
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		// Run migrations
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
	} else {
		log.Println("DATABASE_URL not set, running without Postgres")
	}

	metrics.Init(database)

	mode, err := matcher.ParseMode(cfg.MatchMode)
	if err != nil {
		log.Fatalf("Invalid MATCH_MODE: %v", err)
	}

	source, err := registry.SourceFor(cfg.DatabaseSource, cfg.DatabaseFile, database)
	if err != nil {
		log.Fatalf("Invalid PE database source: %v", err)
	}

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Background context: owns the database snapshot. The first load runs
	// concurrently with serving; early checks see the empty database.
	store := registry.NewStore(yamlCfg.GetOverrides()...)
	svc := background.NewService(store, mode)
	client := svc.Start(ctx)
	defer client.Close()

	go store.Load(ctx, source)
	go jobs.NewReloader(store, source, cfg.ReloadInterval).Start(ctx)

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Deps{
		Client: client,
		Store:  store,
		Source: source,
		DB:     database,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s (source: %s, match mode: %s)", cfg.ServerAddr, source.Name(), mode)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
