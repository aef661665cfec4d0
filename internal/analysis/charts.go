package analysis

import (
	"fmt"
	"sort"

	"datasight/domain/dataset"
)

const maxChartRecommendations = 6

// RecommendCharts suggests chart widgets from the inferred column set and
// any retained correlations: histograms for numeric columns, bars for
// categorical ones, lines for datetime/numeric pairs and scatters for
// strong correlations. The UI layer decides what to actually render.
func RecommendCharts(columns map[string]dataset.Column, correlations []dataset.Correlation) []dataset.ChartRecommendation {
	charts := []dataset.ChartRecommendation{}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	var dateCols []string
	for _, name := range names {
		col := columns[name]
		switch col.Type {
		case dataset.TypeNumeric:
			charts = append(charts, dataset.ChartRecommendation{
				Kind:    dataset.ChartHistogram,
				Title:   fmt.Sprintf("Distribution of %s", name),
				Columns: []string{name},
				Reason:  "numeric column",
			})
		case dataset.TypeCategorical:
			charts = append(charts, dataset.ChartRecommendation{
				Kind:    dataset.ChartBar,
				Title:   fmt.Sprintf("Counts by %s", name),
				Columns: []string{name},
				Reason:  fmt.Sprintf("categorical column with %d distinct values", col.UniqueCount),
			})
		case dataset.TypeDatetime:
			dateCols = append(dateCols, name)
		}
	}

	for _, dc := range dateCols {
		for _, name := range names {
			if columns[name].IsNumeric() {
				charts = append(charts, dataset.ChartRecommendation{
					Kind:    dataset.ChartLine,
					Title:   fmt.Sprintf("%s over %s", name, dc),
					Columns: []string{dc, name},
					Reason:  "datetime and numeric pair",
				})
				break
			}
		}
	}

	for _, corr := range correlations {
		if corr.Strength == dataset.StrengthStrong {
			charts = append(charts, dataset.ChartRecommendation{
				Kind:    dataset.ChartScatter,
				Title:   fmt.Sprintf("%s vs %s", corr.ColumnA, corr.ColumnB),
				Columns: []string{corr.ColumnA, corr.ColumnB},
				Reason:  fmt.Sprintf("strong %s correlation (r=%.2f)", corr.Direction, corr.Coefficient),
			})
		}
	}

	if len(charts) > maxChartRecommendations {
		charts = charts[:maxChartRecommendations]
	}

	return charts
}
