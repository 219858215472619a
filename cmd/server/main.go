package main

import (
	"log"

	_ "todo/docs"
	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/server"
)

// @title           Todo API
// @version         1.0
// @description     Projects and tasks with deadlines and automatic closing of overdue work.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("❌ Server initialization failed", "err", err)
	}

	s.Run()
}
