package analysis

import (
	"fmt"
	"math"
	"sort"

	"datasight/domain/dataset"
)

// DetectTrend analyzes one (date column, numeric column) pair: rows are
// re-sorted by parsed date, then the value series yields a direction,
// percent change, centered 3-point moving average and a zig-zag
// seasonality flag. The second return value is false when no trend could
// be computed; callers must treat that as "not computed", not as proof
// that no trend exists.
func (e *Engine) DetectTrend(records []dataset.Record, dateColumn, valueColumn string) (dataset.TimeTrend, bool) {
	if len(records) < e.opts.MinTrendRows {
		return dataset.TimeTrend{}, false
	}

	type point struct {
		at    int64
		value float64
	}

	points := make([]point, 0, len(records))
	for _, rec := range records {
		dv, ok := rec[dateColumn]
		if !ok || dataset.IsMissing(dv) {
			return dataset.TimeTrend{}, false
		}
		t, ok := parseDate(dv)
		if !ok {
			return dataset.TimeTrend{}, false
		}
		nv, ok := rec[valueColumn]
		if !ok || dataset.IsMissing(nv) {
			return dataset.TimeTrend{}, false
		}
		f, ok := parseNumeric(nv)
		if !ok {
			return dataset.TimeTrend{}, false
		}
		points = append(points, point{at: t.UnixNano(), value: f})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].at < points[j].at })

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.value
	}

	// Centered 3-point moving average; endpoints have no neighbors and
	// are dropped from the output series.
	movingAvg := make([]float64, 0, len(values)-2)
	for i := 1; i < len(values)-1; i++ {
		movingAvg = append(movingAvg, (values[i-1]+values[i]+values[i+1])/3)
	}

	n := len(values)
	firstQuarter := values[:n/4]
	lastQuarter := values[(3*n)/4:]
	firstAvg := average(firstQuarter)
	lastAvg := average(lastQuarter)

	if len(firstQuarter) == 0 || firstAvg == 0 {
		return dataset.TimeTrend{}, false
	}

	percentChange := (lastAvg - firstAvg) / firstAvg * 100

	direction := dataset.TrendStable
	switch {
	case percentChange > 10:
		direction = dataset.TrendIncreasing
	case percentChange < -10:
		direction = dataset.TrendDecreasing
	}

	return dataset.TimeTrend{
		DateColumn:    dateColumn,
		ValueColumn:   valueColumn,
		Direction:     direction,
		PercentChange: fmt.Sprintf("%.2f", percentChange),
		Seasonality:   detectSeasonality(values),
		MovingAverage: movingAvg,
	}, true
}

// detectSeasonality is a crude zig-zag detector: it counts sign flips
// across successive first differences and flags the series when flips
// exceed 40% of the difference count. It is an approximation, not a
// spectral test.
func detectSeasonality(values []float64) bool {
	if len(values) < 3 {
		return false
	}

	diffs := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs[i-1] = values[i] - values[i-1]
	}

	flips := 0
	for i := 1; i < len(diffs); i++ {
		if sign(diffs[i]) != sign(diffs[i-1]) {
			flips++
		}
	}

	return float64(flips) > float64(len(diffs))*0.4
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
