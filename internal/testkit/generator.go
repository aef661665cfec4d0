package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"datasight/domain/dataset"
	"datasight/ports"
)

// Generator produces deterministic synthetic datasets for tests and the
// demo dashboard. The same seed always yields the same records.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a seeded generator
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SalesDataset builds a daily sales table with known structure: revenue
// trends upward and correlates with units sold, a handful of cells are
// missing, two rows are exact duplicates and one discount value is an
// extreme outlier. The outlier lives in discount rather than revenue so
// the units/revenue correlation stays intact.
func (g *Generator) SalesDataset(days int) *ports.TabularSource {
	if days < 10 {
		days = 10
	}

	regions := []string{"north", "south", "east", "west"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records := make([]dataset.Record, 0, days+1)
	for i := 0; i < days; i++ {
		units := 50 + float64(i)*2 + g.rng.Float64()*10
		revenue := units*19.99 + g.rng.Float64()*40
		discount := math.Round(g.rng.Float64()*20) / 100

		rec := dataset.Record{
			"date":     start.AddDate(0, 0, i).Format("2006-01-02"),
			"region":   regions[i%len(regions)],
			"units":    fmt.Sprintf("%.0f", units),
			"revenue":  fmt.Sprintf("%.2f", revenue),
			"discount": fmt.Sprintf("%.2f", discount),
			"returned": fmt.Sprintf("%t", i%7 == 0),
		}
		records = append(records, rec)
	}

	// Inject known defects: missing cells, one outlier, one duplicate.
	records[2]["discount"] = ""
	records[5]["region"] = "null"
	records[len(records)/2]["discount"] = "999999.99"
	dup := dataset.Record{}
	for k, v := range records[1] {
		dup[k] = v
	}
	records = append(records, dup)

	return &ports.TabularSource{
		FileName: "demo_sales.csv",
		FileSize: int64(len(records) * 64),
		Headers:  []string{"date", "region", "units", "revenue", "discount", "returned"},
		Records:  records,
	}
}

// FlatSeries builds records with a date column and a constant value
// column, useful for asserting stable-trend behavior.
func (g *Generator) FlatSeries(n int, value float64) []dataset.Record {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]dataset.Record, n)
	for i := range records {
		records[i] = dataset.Record{
			"date":  start.AddDate(0, 0, i).Format("2006-01-02"),
			"value": fmt.Sprintf("%g", value),
		}
	}
	return records
}

// LinearPair builds records where y = slope*x + intercept plus seeded
// noise, for correlation assertions.
func (g *Generator) LinearPair(n int, slope, intercept, noise float64) []dataset.Record {
	records := make([]dataset.Record, n)
	for i := range records {
		x := float64(i + 1)
		y := slope*x + intercept + (g.rng.Float64()-0.5)*2*noise
		records[i] = dataset.Record{
			"x": fmt.Sprintf("%g", x),
			"y": fmt.Sprintf("%g", y),
		}
	}
	return records
}
