package analysis

import (
	"testing"

	"datasight/domain/dataset"
)

func TestRecommendCharts_ByColumnType(t *testing.T) {
	columns := map[string]dataset.Column{
		"revenue": {Name: "revenue", Type: dataset.TypeNumeric},
		"region":  {Name: "region", Type: dataset.TypeCategorical, UniqueCount: 4},
		"date":    {Name: "date", Type: dataset.TypeDatetime},
		"note":    {Name: "note", Type: dataset.TypeText},
	}
	correlations := []dataset.Correlation{
		{ColumnA: "revenue", ColumnB: "units", Coefficient: 0.92, Strength: dataset.StrengthStrong, Direction: dataset.DirectionPositive},
	}

	charts := RecommendCharts(columns, correlations)

	kinds := map[dataset.ChartKind]int{}
	for _, c := range charts {
		kinds[c.Kind]++
	}

	if kinds[dataset.ChartHistogram] != 1 {
		t.Errorf("expected one histogram for the numeric column, got %d", kinds[dataset.ChartHistogram])
	}
	if kinds[dataset.ChartBar] != 1 {
		t.Errorf("expected one bar chart for the categorical column, got %d", kinds[dataset.ChartBar])
	}
	if kinds[dataset.ChartLine] != 1 {
		t.Errorf("expected one line chart for the datetime/numeric pair, got %d", kinds[dataset.ChartLine])
	}
	if kinds[dataset.ChartScatter] != 1 {
		t.Errorf("expected one scatter for the strong correlation, got %d", kinds[dataset.ChartScatter])
	}
}

func TestRecommendCharts_CapAndModerateExcluded(t *testing.T) {
	columns := map[string]dataset.Column{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		columns[name] = dataset.Column{Name: name, Type: dataset.TypeNumeric}
	}
	correlations := []dataset.Correlation{
		{ColumnA: "a", ColumnB: "b", Coefficient: 0.6, Strength: dataset.StrengthModerate},
	}

	charts := RecommendCharts(columns, correlations)
	if len(charts) > maxChartRecommendations {
		t.Errorf("expected at most %d charts, got %d", maxChartRecommendations, len(charts))
	}
	for _, c := range charts {
		if c.Kind == dataset.ChartScatter {
			t.Error("moderate correlations must not produce scatter charts")
		}
	}
}
