package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"employee-overlap-service/internal/adapters/cache"
	"employee-overlap-service/internal/adapters/repositories"
	"employee-overlap-service/internal/api"
	"employee-overlap-service/internal/config"
	"employee-overlap-service/internal/platform/db"
	"employee-overlap-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/assignments.csv")
	port := config.Get("PORT", "8080")

	sqlDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatal(err)
	}
	if err := repositories.SeedFromCSV(sqlDB, repositories.DialectSQLite, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLAssignmentRepository(sqlDB)

	// Redis is optional: without it every report request rescans, which is
	// fine for small datasets.
	var reportCache ports.ReportCache
	if addr := strings.TrimSpace(config.Get("REDIS_ADDR", "")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		reportCache = cache.NewRedisReportCache(client)
		log.Printf("Report cache enabled addr=%s", addr)
	}

	router := api.NewRouter(repo, reportCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
