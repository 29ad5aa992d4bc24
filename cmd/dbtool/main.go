package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"employee-overlap-service/internal/adapters/repositories"
	"employee-overlap-service/internal/config"
	"employee-overlap-service/internal/platform/db"
)

// dbtool initializes the assignments schema in postgres and loads a seed
// file into it.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	sqlDB, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/assignments.csv")

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromCSV(sqlDB, repositories.DialectPostgres, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
