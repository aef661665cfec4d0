package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"datasight/adapters/tabular"
	"datasight/app"
	"datasight/internal"
	"datasight/internal/analysis"
	"datasight/internal/config"
	"datasight/internal/testkit"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "datasight",
		Short: "Analyze tabular datasets from the command line",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildAnalyzer() (*app.AnalyzerService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
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

	return app.NewAnalyzerService(reader, engine, cfg.Analysis.MaxConcurrentPairs, logger), nil
}

func newAnalyzeCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a CSV or Excel file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := buildAnalyzer()
			if err != nil {
				return err
			}

			result, err := analyzer.AnalyzeFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			return printJSON(result, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent JSON output")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var seed int64
	var days int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the seeded demo dataset through the full pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := buildAnalyzer()
			if err != nil {
				return err
			}

			source := testkit.NewGenerator(seed).SalesDataset(days)
			result, err := analyzer.AnalyzeSource(context.Background(), source)
			if err != nil {
				return err
			}

			return printJSON(result, true)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "generator seed")
	cmd.Flags().IntVar(&days, "days", 60, "days of demo data")
	return cmd
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
