package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"datasight/domain/dataset"
)

// FindCorrelations computes pairwise Pearson correlation across all
// numeric columns. A pair is kept only when it has at least
// MinCorrelationPairs rows where both sides are non-missing, its variance
// is non-degenerate and |r| exceeds the configured threshold. Results are
// sorted by |r| descending.
func (e *Engine) FindCorrelations(records []dataset.Record, columns map[string]dataset.Column) []dataset.Correlation {
	correlations := []dataset.Correlation{}

	numeric := make([]string, 0, len(columns))
	for name, col := range columns {
		if col.IsNumeric() {
			numeric = append(numeric, name)
		}
	}
	sort.Strings(numeric)

	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			if corr, ok := e.correlatePair(records, numeric[i], numeric[j]); ok {
				correlations = append(correlations, corr)
			}
		}
	}

	sort.SliceStable(correlations, func(a, b int) bool {
		return math.Abs(correlations[a].Coefficient) > math.Abs(correlations[b].Coefficient)
	})

	return correlations
}

// correlatePair computes Pearson's r for one unordered column pair over
// the rows where both cells parse as numbers.
func (e *Engine) correlatePair(records []dataset.Record, colA, colB string) (dataset.Correlation, bool) {
	var xs, ys []float64
	for _, rec := range records {
		va, okA := rec[colA]
		vb, okB := rec[colB]
		if !okA || !okB || dataset.IsMissing(va) || dataset.IsMissing(vb) {
			continue
		}
		x, okX := parseNumeric(va)
		y, okY := parseNumeric(vb)
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) < e.opts.MinCorrelationPairs {
		return dataset.Correlation{}, false
	}

	r, ok := pearson(xs, ys)
	if !ok {
		return dataset.Correlation{}, false
	}
	if math.Abs(r) <= e.opts.CorrelationThreshold {
		return dataset.Correlation{}, false
	}

	strength := dataset.StrengthModerate
	if math.Abs(r) > 0.8 {
		strength = dataset.StrengthStrong
	}
	direction := dataset.DirectionPositive
	if r < 0 {
		direction = dataset.DirectionNegative
	}

	return dataset.Correlation{
		ColumnA:     colA,
		ColumnB:     colB,
		Coefficient: math.Round(r*100) / 100,
		Strength:    strength,
		Direction:   direction,
		PValue:      correlationPValue(r, len(xs)),
		SampleSize:  len(xs),
	}, true
}

// pearson computes the correlation coefficient via the sum-based formula:
// r = (nΣxy − ΣxΣy) / sqrt((nΣx²−(Σx)²)(nΣy²−(Σy)²)).
// Returns false when the denominator is exactly zero (degenerate variance).
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
		sumYY += ys[i] * ys[i]
	}

	denominator := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denominator == 0 {
		return 0, false
	}

	return (n*sumXY - sumX*sumY) / denominator, true
}

// correlationPValue converts r to a two-tailed p-value through the
// Student's t transform t = r·sqrt((n−2)/(1−r²)).
func correlationPValue(r float64, sampleSize int) float64 {
	if sampleSize < 3 {
		return 1.0
	}
	if math.Abs(r) >= 1 {
		return 0
	}

	df := float64(sampleSize - 2)
	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return 2 * (1 - tDist.CDF(math.Abs(t)))
}
