package analysis

import (
	"math"
	"testing"
)

func TestComputeNumericStats_KnownValues(t *testing.T) {
	stats, ok := ComputeNumericStats([]float64{1, 2, 3, 4, 5})
	if !ok {
		t.Fatal("expected stats for non-empty input")
	}

	if stats.Min != 1 || stats.Max != 5 {
		t.Errorf("expected min=1 max=5, got min=%g max=%g", stats.Min, stats.Max)
	}
	if stats.Mean != 3 {
		t.Errorf("expected mean 3, got %g", stats.Mean)
	}
	if stats.Median != 3 {
		t.Errorf("expected median 3, got %g", stats.Median)
	}
	// Population standard deviation divides by N, not N-1
	if math.Abs(stats.StdDev-math.Sqrt(2)) > 1e-9 {
		t.Errorf("expected population stddev sqrt(2)≈1.414, got %g", stats.StdDev)
	}
	if stats.Q1 != 2 || stats.Q2 != 3 || stats.Q3 != 4 {
		t.Errorf("expected quartiles (2,3,4), got (%g,%g,%g)", stats.Q1, stats.Q2, stats.Q3)
	}
}

func TestComputeNumericStats_EvenCountMedian(t *testing.T) {
	stats, ok := ComputeNumericStats([]float64{4, 1, 3, 2})
	if !ok {
		t.Fatal("expected stats")
	}
	// Average of the two central elements
	if stats.Median != 2.5 {
		t.Errorf("expected median 2.5, got %g", stats.Median)
	}
}

func TestComputeNumericStats_Empty(t *testing.T) {
	if _, ok := ComputeNumericStats(nil); ok {
		t.Error("expected no stats for empty input")
	}
}

func TestNearestRankQuartiles_NoInterpolation(t *testing.T) {
	q1, _, q3 := nearestRankQuartiles([]float64{1, 2, 3, 4, 5, 100})
	if q1 != 2 {
		t.Errorf("expected Q1=2, got %g", q1)
	}
	if q3 != 4 {
		t.Errorf("expected Q3=4, got %g", q3)
	}
}

func TestNearestRankQuartiles_SingleValue(t *testing.T) {
	q1, q2, q3 := nearestRankQuartiles([]float64{7})
	if q1 != 7 || q2 != 7 || q3 != 7 {
		t.Errorf("expected all quartiles 7, got (%g,%g,%g)", q1, q2, q3)
	}
}
