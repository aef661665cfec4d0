package main

import (
	"log"

	"github.com/joho/godotenv"

	"datasight/adapters/tabular"
	"datasight/app"
	"datasight/internal"
	"datasight/internal/analysis"
	"datasight/internal/config"
	"datasight/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	engine := analysis.NewEngine(analysis.Options{
		SampleSize:           cfg.Analysis.SampleSize,
		MinOutlierRows:       cfg.Analysis.MinOutlierRows,
		MinCorrelationPairs:  cfg.Analysis.MinCorrelationPairs,
		CorrelationThreshold: cfg.Analysis.CorrelationThreshold,
		MinTrendRows:         cfg.Analysis.MinTrendRows,
	})
	reader := tabular.NewReader(logger)
	analyzer := app.NewAnalyzerService(reader, engine, cfg.Analysis.MaxConcurrentPairs, logger)
	insights := app.NewInsightService(nil, cfg.AI.Timeout, logger)

	dashboard, err := ui.NewApp(ui.Config{Port: cfg.Server.UIPort}, analyzer, insights, logger)
	if err != nil {
		log.Fatalf("failed to build dashboard: %v", err)
	}

	if err := dashboard.Run(); err != nil {
		log.Fatalf("dashboard exited: %v", err)
	}
}
