package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fivestore/fivestore-api/internal/config"
	"github.com/fivestore/fivestore-api/internal/logger"
	"github.com/fivestore/fivestore-api/internal/server"
)

func main() {
	// .env is optional; deployed environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	router := server.NewRouter(cfg)

	logger.Log.Sugar().Infof("Server starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
