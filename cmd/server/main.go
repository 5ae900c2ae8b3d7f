package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"mtop_registry/internal/config"
	"mtop_registry/internal/logger"
	"mtop_registry/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and run migrations
	config.InitDB()
	if err := config.Migrate(config.DB); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("server running at :%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
