package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/api"
	"alcyxob/workout-planner/internal/config"
	"alcyxob/workout-planner/internal/export"
	"alcyxob/workout-planner/internal/repository/mongo"
	"alcyxob/workout-planner/internal/service"
	"alcyxob/workout-planner/internal/storage"
	"alcyxob/workout-planner/internal/weather"
	"alcyxob/workout-planner/pkg/logger"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logg, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
		File:        cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	logg.Info("starting workout planner server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logg.Error("could not connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		logg.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logg.Error("failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logg.Info("database connection established", "database", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureSelectionIndexes(ctx, appDB.Collection("workout_selections"))
		mongo.EnsureCustomWorkoutIndexes(ctx, appDB.Collection("custom_workouts"))
		logg.Info("index creation process completed")
	}()

	// --- Optional CSV Import Archive ---
	var archive storage.ArchiveStorage
	if cfg.S3.BucketName != "" {
		archive, err = storage.NewS3Storage(cfg.S3, logg)
		if err != nil {
			logg.Error("failed to initialize S3 archive storage", "error", err)
			os.Exit(1)
		}
	} else {
		logg.Info("no S3 bucket configured, CSV archiving disabled")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	selectionRepo := mongo.NewMongoSelectionRepository(appDB)
	customRepo := mongo.NewMongoCustomWorkoutRepository(appDB)
	triClubRepo := mongo.NewMongoTriClubRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	plannerService := service.NewPlannerService(workoutRepo, selectionRepo, customRepo)
	importService := service.NewImportService(workoutRepo, archive, logg)
	customService := service.NewCustomWorkoutService(customRepo)
	triClubService := service.NewTriClubService(triClubRepo)
	targetService := service.NewTargetService(plannerService)

	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.Latitude, cfg.Weather.Longitude, cfg.Weather.Timezone)
	weatherService := service.NewWeatherService(weatherClient, 0)

	var exportService service.ExportService
	if cfg.CalDAV.URL != "" {
		caldavClient := export.NewClient(cfg.CalDAV.URL, cfg.CalDAV.Username, cfg.CalDAV.Password, cfg.CalDAV.Calendar, logg)
		exportService = service.NewExportService(plannerService, caldavClient, logg)
	} else {
		logg.Info("no CalDAV target configured, calendar export disabled")
	}

	// --- Initialize Gin Engine ---
	if cfg.Log.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	api.SetupRoutes(router, cfg.JWT.Secret, api.Services{
		Auth:    authService,
		Planner: plannerService,
		Import:  importService,
		Custom:  customService,
		TriClub: triClubService,
		Target:  targetService,
		Weather: weatherService,
		Export:  exportService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logg.Info("server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("listen and serve failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logg.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logg.Info("server exiting")
}
