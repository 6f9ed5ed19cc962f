package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"oysterfarm/cmd"
	"oysterfarm/internal/core/container"
	"oysterfarm/internal/core/routes"
	"oysterfarm/internal/database"
	"oysterfarm/internal/logger"
	"oysterfarm/internal/middleware"
	"oysterfarm/pkg/metadata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	appLogger := logger.NewLogger()
	defer appLogger.Sync()

	policy, err := metadata.NewCapacityPolicy(os.Getenv("CAPACITY_POLICY"))
	if err != nil {
		log.Fatalf("Invalid CAPACITY_POLICY: %v", err)
	}

	var db *sql.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		db, err = database.NewPostgresConnection(dbURL)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		defer db.Close()
		log.Println("Connected to the database successfully!")
	} else {
		log.Println("DATABASE_URL not set, running with the in-memory backend.")
	}

	appContainer := container.NewAppContainer(db, policy, appLogger)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())

	routes.RegisterRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}
