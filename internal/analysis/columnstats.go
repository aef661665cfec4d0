package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"datasight/domain/dataset"
)

// ComputeNumericStats summarizes a numeric column's values: min, max,
// arithmetic mean, sort-and-middle median, population standard deviation
// and nearest-rank quartiles. Returns false for an empty input.
func ComputeNumericStats(values []float64) (dataset.NumericStats, bool) {
	if len(values) == 0 {
		return dataset.NumericStats{}, false
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviationPopulation(values)

	q1, q2, q3 := nearestRankQuartiles(values)

	return dataset.NumericStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Q1:     q1,
		Q2:     q2,
		Q3:     q3,
	}, true
}

// nearestRankQuartiles takes quartiles as the sorted values at indexes
// floor(0.25*(N-1)), floor(0.5*(N-1)) and floor(0.75*(N-1)). No
// interpolation: Q2 can therefore differ from the median on even-length
// inputs. For [1,2,3,4,5,100] this yields Q1=2, Q3=4.
func nearestRankQuartiles(values []float64) (q1, q2, q3 float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	last := float64(len(sorted) - 1)
	q1 = sorted[int(math.Floor(last*0.25))]
	q2 = sorted[int(math.Floor(last*0.5))]
	q3 = sorted[int(math.Floor(last*0.75))]
	return q1, q2, q3
}
