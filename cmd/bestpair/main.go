package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"employee-overlap-service/internal/adapters/csvsource"
	"employee-overlap-service/internal/config"
	"employee-overlap-service/internal/domain"
	"employee-overlap-service/internal/services"
)

// bestpair is the one-shot batch mode: read an assignments CSV, print the
// employee pair with the longest total time on shared projects, then one
// line per shared project with a positive overlap.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	csvPath := config.Get("CSV_PATH", "data/seeds/assignments.csv")
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	records, err := csvsource.ReadFile(csvPath)
	if err != nil {
		log.Fatal(err)
	}

	// Ongoing assignments resolve against the moment the tool runs.
	index := domain.BuildIndex(records, time.Now().UTC())

	report, err := services.FindBestPair(index)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s, %s, %d\n", report.EmployeeA, report.EmployeeB, report.TotalDays)
	for _, p := range report.Projects {
		fmt.Printf("%s, %d\n", p.ProjectID, p.Days)
	}
}
