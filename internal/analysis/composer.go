package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"datasight/domain/dataset"
)

const maxFallbackInsights = 5

// ComposeInsights runs every derived-signal pass over the dataset and
// assembles an ordered recommendation list. The aggregate is freshly
// constructed on each call.
func (e *Engine) ComposeInsights(records []dataset.Record, info *dataset.DatasetInfo) dataset.InsightAggregate {
	agg := dataset.InsightAggregate{
		TimeTrends:      []dataset.TimeTrend{},
		Correlations:    []dataset.Correlation{},
		Outliers:        map[string]dataset.OutlierInfo{},
		Recommendations: []string{},
	}
	if info == nil || len(records) == 0 {
		return agg
	}

	agg.Outliers = e.FindOutliers(records, info.Columns)
	agg.Correlations = e.FindCorrelations(records, info.Columns)

	dateCols := info.DatetimeColumns()
	numericCols := info.NumericColumns()
	sort.Strings(dateCols)
	sort.Strings(numericCols)
	for _, dc := range dateCols {
		for _, nc := range numericCols {
			if trend, ok := e.DetectTrend(records, dc, nc); ok {
				agg.TimeTrends = append(agg.TimeTrends, trend)
			}
		}
	}

	agg.Recommendations = e.composeRecommendations(agg)
	return agg
}

// composeRecommendations turns the strongest signals into a small ordered
// list of human-readable suggestions: top correlation first, then the most
// significant trend, any seasonality, and finally outlier columns.
func (e *Engine) composeRecommendations(agg dataset.InsightAggregate) []string {
	recs := []string{}

	if len(agg.Correlations) > 0 {
		top := agg.Correlations[0]
		recs = append(recs, fmt.Sprintf(
			"Explore the %s %s relationship between %s and %s (r=%.2f)",
			top.Strength, top.Direction, top.ColumnA, top.ColumnB, top.Coefficient))
	}

	if trend, ok := mostSignificantTrend(agg.TimeTrends); ok {
		recs = append(recs, fmt.Sprintf(
			"%s shows a %s trend over %s (%s%% change); consider a line chart",
			trend.ValueColumn, trend.Direction, trend.DateColumn, trend.PercentChange))
	}

	for _, trend := range agg.TimeTrends {
		if trend.Seasonality {
			recs = append(recs, fmt.Sprintf(
				"%s appears seasonal over %s; compare periods before drawing conclusions",
				trend.ValueColumn, trend.DateColumn))
			break
		}
	}

	if len(agg.Outliers) > 0 {
		names := make([]string, 0, len(agg.Outliers))
		for name := range agg.Outliers {
			names = append(names, name)
		}
		sort.Strings(names)
		recs = append(recs, fmt.Sprintf(
			"Review outliers in %s before aggregating; extreme values skew averages",
			strings.Join(names, ", ")))
	}

	return recs
}

// mostSignificantTrend picks the trend with the largest absolute percent
// change, requiring it to exceed 20%.
func mostSignificantTrend(trends []dataset.TimeTrend) (dataset.TimeTrend, bool) {
	best := dataset.TimeTrend{}
	bestChange := 20.0
	found := false
	for _, t := range trends {
		pc, err := strconv.ParseFloat(t.PercentChange, 64)
		if err != nil {
			continue
		}
		if abs := absFloat(pc); abs > bestChange {
			best = t
			bestChange = abs
			found = true
		}
	}
	return best, found
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// FallbackInsights builds the deterministic insight set used when the
// generative provider is unavailable or fails. Each entry carries a fixed
// confidence score; the list is capped at five entries.
func FallbackInsights(info *dataset.DatasetInfo, agg dataset.InsightAggregate) []dataset.Insight {
	insights := []dataset.Insight{}
	if info == nil {
		return insights
	}

	insights = append(insights, dataset.Insight{
		Title: "Dataset overview",
		Body: fmt.Sprintf("%s contains %d rows across %d columns.",
			info.FileName, info.RowCount, info.ColumnCount),
		Confidence: 0.95,
	})

	q := info.Quality
	assessment := "No missing cells, duplicate rows or outliers were detected."
	if q.MissingValues > 0 || q.DuplicateRows > 0 || q.Outliers > 0 {
		assessment = fmt.Sprintf(
			"Found %d missing cells, %d duplicate rows and %d outlier values; clean these before modeling.",
			q.MissingValues, q.DuplicateRows, q.Outliers)
	}
	insights = append(insights, dataset.Insight{
		Title:      "Data quality",
		Body:       assessment,
		Confidence: 0.9,
	})

	if numeric := info.NumericColumns(); len(numeric) > 0 {
		sort.Strings(numeric)
		insights = append(insights, dataset.Insight{
			Title: "Numeric columns",
			Body: fmt.Sprintf("%d numeric columns (%s) support statistical summaries and correlation analysis.",
				len(numeric), strings.Join(numeric, ", ")),
			Confidence: 0.85,
		})
	}

	if categorical := info.CategoricalColumns(); len(categorical) > 0 {
		sort.Strings(categorical)
		insights = append(insights, dataset.Insight{
			Title: "Categorical columns",
			Body: fmt.Sprintf("%d categorical columns (%s) are good candidates for grouping and bar charts.",
				len(categorical), strings.Join(categorical, ", ")),
			Confidence: 0.8,
		})
	}

	if dates := info.DatetimeColumns(); len(dates) > 0 {
		sort.Strings(dates)
		insights = append(insights, dataset.Insight{
			Title: "Datetime columns",
			Body: fmt.Sprintf("Datetime columns (%s) enable trend analysis over time.",
				strings.Join(dates, ", ")),
			Confidence: 0.8,
		})
	}

	if len(insights) < 3 {
		insights = append(insights, dataset.Insight{
			Title:      "Explore further",
			Body:       "Ask a question about a specific column to dig deeper into this dataset.",
			Confidence: 0.7,
		})
	}

	if len(insights) > maxFallbackInsights {
		insights = insights[:maxFallbackInsights]
	}

	return insights
}
