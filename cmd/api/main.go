package main

import (
	"fmt"
	"log"

	"fitratio/internal/config"
	"fitratio/internal/db"
	"fitratio/internal/pkg/openai"
	"fitratio/internal/routes"
	"fitratio/internal/store"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.LoadConfig()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseFile)
	if err != nil {
		sugar.Fatalf("Failed to open database: %v", err)
	}

	comparisons := store.New(dbConn)
	if err := comparisons.Init(); err != nil {
		sugar.Fatalf("Failed to initialize database: %v", err)
	}

	var estimator openai.RatioEstimator
	if cfg.OpenAIAPIKey != "" {
		estimator = openai.NewEstimator(cfg.OpenAIAPIKey)
	} else {
		sugar.Warn("OPENAI_API_KEY is not set, /calculate will answer with a configuration error")
	}

	router := routes.SetupRouter(comparisons, estimator, sugar)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	sugar.Infof("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		sugar.Fatalf("Failed to start server: %v", err)
	}
}
