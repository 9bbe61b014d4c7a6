package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/marlon/enrollhub/internal/pkg/logger"
	"github.com/marlon/enrollhub/internal/server"
)

// @title EnrollHub API
// @version 1.0
// @description School records backend covering admission applications, the student roster, the rejection archive, and section assignment

// @contact.name API Support
// @contact.email support@enrollhub.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /api
// @schemes http

func main() {
	// A missing .env is fine; configs/config.yaml and real env vars still apply
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
