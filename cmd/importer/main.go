// Command importer loads a TrainingPeaks CSV export straight into the
// database, bypassing the HTTP API. Useful for seeding a fresh instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"alcyxob/workout-planner/internal/config"
	"alcyxob/workout-planner/internal/repository/mongo"
	"alcyxob/workout-planner/internal/service"
	"alcyxob/workout-planner/pkg/logger"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-config dir] <plan.csv>\n", os.Args[0])
		os.Exit(2)
	}
	csvPath := flag.Arg(0)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	logg, err := logger.New(logger.Config{Level: cfg.Log.Level, Environment: cfg.Log.Environment})
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer mongo.DisconnectDB(dbClient)
	appDB := dbClient.Database(cfg.Database.Name)

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("could not open %s: %v", csvPath, err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	importService := service.NewImportService(mongo.NewMongoWorkoutRepository(appDB), nil, logg)
	result, err := importService.ImportCSV(ctx, f, filepath.Base(csvPath))
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("imported %d workouts (%d duplicates, %d invalid rows skipped)\n",
		result.Imported, result.SkippedDuplicate, result.SkippedInvalid)
}
