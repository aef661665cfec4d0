package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"datasight/domain/dataset"
	"datasight/internal"
	"datasight/internal/analysis"
	"datasight/ports"
)

// InsightService wraps the optional generative provider. Every method
// works with the provider entirely absent: failures are logged at the
// boundary and replaced with the deterministic fallback set.
type InsightService struct {
	provider ports.InsightProvider
	timeout  time.Duration
	log      *internal.Logger
}

// NewInsightService creates an insight service. provider may be nil.
func NewInsightService(provider ports.InsightProvider, timeout time.Duration, log *internal.Logger) *InsightService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = internal.DefaultLogger
	}
	return &InsightService{provider: provider, timeout: timeout, log: log}
}

// Insights returns narrative insights for an analyzed dataset. When the
// provider is configured its free-text answer leads the list; otherwise,
// or on any provider failure, only the fallback set is returned.
func (s *InsightService) Insights(ctx context.Context, info *dataset.DatasetInfo, agg dataset.InsightAggregate) []dataset.Insight {
	fallback := analysis.FallbackInsights(info, agg)
	if s.provider == nil {
		return fallback
	}

	prompt := BuildPrompt("Summarize the most important findings in this dataset.", info, agg)
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.Generate(genCtx, prompt)
	if err != nil {
		s.log.Warn("insight provider failed, using fallback set: %v", err)
		return fallback
	}

	insights := []dataset.Insight{{
		Title:      "AI analysis",
		Body:       text,
		Confidence: 0.75,
	}}
	return append(insights, fallback...)
}

// Ask answers a free-form question about the dataset. Provider failures
// surface as an error so the caller can degrade to recommendations.
func (s *InsightService) Ask(ctx context.Context, question string, info *dataset.DatasetInfo, agg dataset.InsightAggregate) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("no insight provider configured")
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.provider.Generate(genCtx, BuildPrompt(question, info, agg))
}

// BuildPrompt assembles the question and a compact serialized data
// summary into a single prompt string.
func BuildPrompt(question string, info *dataset.DatasetInfo, agg dataset.InsightAggregate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset: %s (%d rows, %d columns)\n", info.FileName, info.RowCount, info.ColumnCount)
	fmt.Fprintf(&b, "Quality: %d missing cells, %d duplicate rows, %d outliers\n\n",
		info.Quality.MissingValues, info.Quality.DuplicateRows, info.Quality.Outliers)

	b.WriteString("Columns:\n")
	names := make([]string, 0, len(info.Columns))
	for name := range info.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		col := info.Columns[name]
		fmt.Fprintf(&b, "- %s (%s, %d unique, %.1f%% missing)", name, col.Type, col.UniqueCount, col.MissingPercent)
		if col.Stats != nil {
			fmt.Fprintf(&b, " mean=%.2f median=%.2f stddev=%.2f range=[%.2f, %.2f]",
				col.Stats.Mean, col.Stats.Median, col.Stats.StdDev, col.Stats.Min, col.Stats.Max)
		}
		b.WriteByte('\n')
	}

	if len(agg.Correlations) > 0 {
		b.WriteString("\nCorrelations:\n")
		for _, c := range agg.Correlations {
			fmt.Fprintf(&b, "- %s vs %s: r=%.2f (%s, %s)\n", c.ColumnA, c.ColumnB, c.Coefficient, c.Strength, c.Direction)
		}
	}

	if len(agg.TimeTrends) > 0 {
		b.WriteString("\nTrends:\n")
		for _, t := range agg.TimeTrends {
			fmt.Fprintf(&b, "- %s over %s: %s (%s%% change, seasonality=%t)\n",
				t.ValueColumn, t.DateColumn, t.Direction, t.PercentChange, t.Seasonality)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	return b.String()
}
