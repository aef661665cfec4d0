package main

import (
	"log"

	"github.com/joho/godotenv"

	"datasight/adapters/api"
	"datasight/adapters/llm"
	"datasight/adapters/tabular"
	"datasight/app"
	"datasight/internal"
	"datasight/internal/analysis"
	"datasight/internal/config"
	"datasight/ports"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	var provider ports.InsightProvider
	if cfg.AI.APIKey != "" {
		client, err := llm.NewClient(llm.Config{
			APIKey:      cfg.AI.APIKey,
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		})
		if err != nil {
			logger.Warn("insight provider disabled: %v", err)
		} else {
			provider = client
		}
	} else {
		logger.Info("no OPENAI_API_KEY set; running with fallback insights only")
	}

	engine := analysis.NewEngine(analysis.Options{
		SampleSize:           cfg.Analysis.SampleSize,
		MinOutlierRows:       cfg.Analysis.MinOutlierRows,
		MinCorrelationPairs:  cfg.Analysis.MinCorrelationPairs,
		CorrelationThreshold: cfg.Analysis.CorrelationThreshold,
		MinTrendRows:         cfg.Analysis.MinTrendRows,
	})

	reader := tabular.NewReader(logger)
	analyzer := app.NewAnalyzerService(reader, engine, cfg.Analysis.MaxConcurrentPairs, logger)
	insights := app.NewInsightService(provider, cfg.AI.Timeout, logger)

	server := api.NewServer(cfg, analyzer, insights, logger)
	if err := server.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
