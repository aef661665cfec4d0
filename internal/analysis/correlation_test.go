package analysis

import (
	"fmt"
	"math"
	"testing"

	"datasight/domain/dataset"
)

func pairRecords(xs, ys []float64) []dataset.Record {
	records := make([]dataset.Record, len(xs))
	for i := range xs {
		records[i] = dataset.Record{
			"x": fmt.Sprintf("%g", xs[i]),
			"y": fmt.Sprintf("%g", ys[i]),
		}
	}
	return records
}

func numericColumns(names ...string) map[string]dataset.Column {
	columns := make(map[string]dataset.Column, len(names))
	for _, n := range names {
		columns[n] = dataset.Column{Name: n, Type: dataset.TypeNumeric}
	}
	return columns
}

func TestFindCorrelations_PerfectPositive(t *testing.T) {
	engine := NewDefaultEngine()
	records := pairRecords([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})

	correlations := engine.FindCorrelations(records, numericColumns("x", "y"))
	if len(correlations) != 1 {
		t.Fatalf("expected one retained pair, got %d", len(correlations))
	}

	corr := correlations[0]
	if corr.Coefficient != 1.00 {
		t.Errorf("expected r=1.00, got %g", corr.Coefficient)
	}
	if corr.Strength != dataset.StrengthStrong {
		t.Errorf("expected strong, got %s", corr.Strength)
	}
	if corr.Direction != dataset.DirectionPositive {
		t.Errorf("expected positive, got %s", corr.Direction)
	}
	if corr.SampleSize != 5 {
		t.Errorf("expected sample size 5, got %d", corr.SampleSize)
	}
}

func TestFindCorrelations_NegativeDirection(t *testing.T) {
	engine := NewDefaultEngine()
	records := pairRecords([]float64{1, 2, 3, 4, 5, 6}, []float64{12, 10, 8, 6, 4, 2})

	correlations := engine.FindCorrelations(records, numericColumns("x", "y"))
	if len(correlations) != 1 {
		t.Fatalf("expected one pair, got %d", len(correlations))
	}
	if correlations[0].Direction != dataset.DirectionNegative {
		t.Errorf("expected negative direction, got %s", correlations[0].Direction)
	}
}

func TestFindCorrelations_WeakPairsExcluded(t *testing.T) {
	engine := NewDefaultEngine()
	// Alternating series with near-zero linear correlation
	records := pairRecords(
		[]float64{1, 2, 3, 4, 5, 6, 7, 8},
		[]float64{5, 1, 5, 1, 5, 1, 5, 1},
	)

	correlations := engine.FindCorrelations(records, numericColumns("x", "y"))
	for _, c := range correlations {
		if math.Abs(c.Coefficient) <= 0.5 {
			t.Errorf("pair with |r|<=0.5 must never be returned, got r=%g", c.Coefficient)
		}
	}
}

func TestFindCorrelations_ZeroVarianceSkipped(t *testing.T) {
	engine := NewDefaultEngine()
	records := pairRecords([]float64{3, 3, 3, 3, 3}, []float64{1, 2, 3, 4, 5})

	if correlations := engine.FindCorrelations(records, numericColumns("x", "y")); len(correlations) != 0 {
		t.Errorf("degenerate variance must skip the pair, got %v", correlations)
	}
}

func TestFindCorrelations_RequiresFivePairs(t *testing.T) {
	engine := NewDefaultEngine()
	records := pairRecords([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})

	if correlations := engine.FindCorrelations(records, numericColumns("x", "y")); len(correlations) != 0 {
		t.Errorf("fewer than 5 paired samples must skip the pair, got %v", correlations)
	}
}

func TestFindCorrelations_MissingRowsExcludedFromPairs(t *testing.T) {
	engine := NewDefaultEngine()
	records := pairRecords([]float64{1, 2, 3, 4, 5, 6}, []float64{2, 4, 6, 8, 10, 12})
	records[0]["y"] = ""

	correlations := engine.FindCorrelations(records, numericColumns("x", "y"))
	if len(correlations) != 1 {
		t.Fatalf("expected one pair, got %d", len(correlations))
	}
	if correlations[0].SampleSize != 5 {
		t.Errorf("row with a missing side must be excluded, got n=%d", correlations[0].SampleSize)
	}
}

func TestFindCorrelations_SortedByAbsoluteR(t *testing.T) {
	engine := NewDefaultEngine()

	records := make([]dataset.Record, 20)
	for i := range records {
		x := float64(i + 1)
		records[i] = dataset.Record{
			"a": fmt.Sprintf("%g", x),
			"b": fmt.Sprintf("%g", 2*x),                          // perfect
			"c": fmt.Sprintf("%g", 3*x+10*float64(i%4)-15), // weaker
		}
	}

	correlations := engine.FindCorrelations(records, numericColumns("a", "b", "c"))
	if len(correlations) < 2 {
		t.Fatalf("expected at least 2 retained pairs, got %d", len(correlations))
	}
	for i := 1; i < len(correlations); i++ {
		if math.Abs(correlations[i].Coefficient) > math.Abs(correlations[i-1].Coefficient) {
			t.Error("correlations must be sorted by |r| descending")
		}
	}
}

func TestPearson_SumFormula(t *testing.T) {
	r, ok := pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
	if !ok {
		t.Fatal("expected a defined coefficient")
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("expected r=1, got %g", r)
	}

	if _, ok := pearson([]float64{1, 1, 1}, []float64{1, 2, 3}); ok {
		t.Error("zero denominator must report not-ok")
	}
}

func TestCorrelationPValue_Bounds(t *testing.T) {
	if p := correlationPValue(1.0, 10); p != 0 {
		t.Errorf("expected p=0 for |r|=1, got %g", p)
	}
	if p := correlationPValue(0.9, 2); p != 1.0 {
		t.Errorf("expected p=1 below minimum sample, got %g", p)
	}
	p := correlationPValue(0.95, 30)
	if p < 0 || p > 0.001 {
		t.Errorf("expected tiny p-value for strong correlation on n=30, got %g", p)
	}
}
