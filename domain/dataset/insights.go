package dataset

// CorrelationStrength buckets the magnitude of a retained coefficient
type CorrelationStrength string

const (
	StrengthModerate CorrelationStrength = "moderate"
	StrengthStrong   CorrelationStrength = "strong"
)

// CorrelationDirection buckets the sign of a coefficient
type CorrelationDirection string

const (
	DirectionPositive CorrelationDirection = "positive"
	DirectionNegative CorrelationDirection = "negative"
)

// Correlation is one retained pairwise Pearson result.
// Coefficient is rounded to two decimals for display; PValue is the
// two-tailed significance from the Student's t transform.
type Correlation struct {
	ColumnA     string               `json:"column_a"`
	ColumnB     string               `json:"column_b"`
	Coefficient float64              `json:"coefficient"`
	Strength    CorrelationStrength  `json:"strength"`
	Direction   CorrelationDirection `json:"direction"`
	PValue      float64              `json:"p_value"`
	SampleSize  int                  `json:"sample_size"`
}

// TrendDirection classifies the movement of a time series
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// TimeTrend is the result of trend detection over one (date, value) pair
type TimeTrend struct {
	DateColumn    string         `json:"date_column"`
	ValueColumn   string         `json:"value_column"`
	Direction     TrendDirection `json:"direction"`
	PercentChange string         `json:"percent_change"`
	Seasonality   bool           `json:"seasonality"`
	MovingAverage []float64      `json:"moving_average"`
}

// OutlierInfo reports IQR-fence outliers for one numeric column
type OutlierInfo struct {
	Count      int      `json:"count"`
	Percent    float64  `json:"percent"`
	LowerBound float64  `json:"lower_bound"`
	UpperBound float64  `json:"upper_bound"`
	Examples   []Record `json:"examples"` // first 5 offending rows
}

// Insight is one generated or fallback narrative entry
type Insight struct {
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Confidence float64 `json:"confidence"`
}

// InsightAggregate bundles every derived signal for one dataset.
// It is recomputed on demand and never persisted.
type InsightAggregate struct {
	TimeTrends      []TimeTrend            `json:"time_trends"`
	Correlations    []Correlation          `json:"correlations"`
	Outliers        map[string]OutlierInfo `json:"outliers"`
	Recommendations []string               `json:"recommendations"`
	Insights        []Insight              `json:"insights"`
}
