package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brettvs/showbill/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := server.Start(logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
