package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/letstracker/journal-engine/internal/adapters/cache"
	adapterHTTP "github.com/letstracker/journal-engine/internal/adapters/handler/http"
	"github.com/letstracker/journal-engine/internal/adapters/repository"
	"github.com/letstracker/journal-engine/internal/core/domain"
	"github.com/letstracker/journal-engine/internal/core/services"
	"github.com/letstracker/journal-engine/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	serverPort := getEnv("PORT", "8080")

	catalog := domain.DefaultCatalog()
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		loaded, err := domain.LoadCatalog(path)
		if err != nil {
			log.Fatalf("Critical: Failed to load habit catalog from %s: %v", path, err)
		}
		catalog = loaded
		log.Printf("Loaded habit catalog from %s (%d habits).", path, catalog.Len())
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	postgresRepo := repository.NewPostgresRecordRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := postgresRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Critical: Failed to ensure database schema: %v", err)
	}

	// Redis is optional: without it the engine serves from postgres alone,
	// recomputing streaks on every read.
	var recordRepo domain.RecordRepository = postgresRepo
	var streakCache services.StreakCache
	redisClient, err := cache.NewRedisClient(
		getEnv("REDIS_HOST", "localhost"),
		getEnv("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		0,
	)
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		redisClient = nil
	} else {
		recordRepo = repository.NewCachedRecordRepository(postgresRepo, redisClient, 5*time.Minute)
		streakCache = cache.NewRedisStreakCache(redisClient, 1*time.Hour)
		log.Println("Redis connected successfully.")
	}

	var worker *workers.StreakWorker
	if streakCache != nil {
		worker = workers.NewStreakWorker(recordRepo, catalog, streakCache)
		worker.Start(ctx)
	}

	recordService := services.NewRecordService(recordRepo, catalog, worker)
	reportService := services.NewReportService(recordRepo, catalog)
	streakService := services.NewStreakService(recordRepo, catalog, streakCache)
	leaderboardService := services.NewLeaderboardService(recordRepo, catalog)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		RecordHandler:      adapterHTTP.NewRecordHandler(recordService),
		ReportHandler:      adapterHTTP.NewReportHandler(reportService),
		StreakHandler:      adapterHTTP.NewStreakHandler(streakService),
		LeaderboardHandler: adapterHTTP.NewLeaderboardHandler(leaderboardService),
		CatalogHandler:     adapterHTTP.NewCatalogHandler(catalog),
		DB:                 db,
		Redis:              redisClient,
		StartTime:          startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Journal Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
