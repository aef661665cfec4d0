package dataset

import (
	"strings"
	"time"

	"datasight/domain/core"
)

// ColumnType classifies the values a column holds
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeBoolean     ColumnType = "boolean"
	TypeDatetime    ColumnType = "datetime"
	TypeCategorical ColumnType = "categorical"
	TypeText        ColumnType = "text"
)

// Record is one raw row: column name -> raw scalar value.
// Values may be string, float64, bool, nil, or a date-like string.
type Record map[string]any

// IsMissing reports whether a raw cell value counts as missing.
// Empty strings and the literal strings "null"/"undefined" are sentinels
// carried over from upstream exports.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		t := strings.TrimSpace(s)
		return t == "" || t == "null" || t == "undefined"
	}
	return false
}

// NumericStats holds summary statistics for a numeric column
type NumericStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Q1     float64 `json:"q1"`
	Q2     float64 `json:"q2"`
	Q3     float64 `json:"q3"`
}

// Column describes a single inferred column.
// Stats is non-nil only for numeric columns.
type Column struct {
	Name           string        `json:"name"`
	Type           ColumnType    `json:"type"`
	UniqueCount    int           `json:"unique_count"`
	MissingCount   int           `json:"missing_count"`
	MissingPercent float64       `json:"missing_percent"`
	Stats          *NumericStats `json:"stats,omitempty"`
}

// IsNumeric reports whether the column was classified numeric
func (c Column) IsNumeric() bool {
	return c.Type == TypeNumeric
}

// DataQuality aggregates dataset-wide quality totals.
// All three totals are computed over the entire record sequence,
// not the inference sample.
type DataQuality struct {
	MissingValues int `json:"missing_values"`
	DuplicateRows int `json:"duplicate_rows"`
	Outliers      int `json:"outliers"`
}

// DatasetInfo is the analysis result for one loaded file
type DatasetInfo struct {
	ID          core.DatasetID        `json:"id"`
	FileName    string                `json:"file_name"`
	FileSize    int64                 `json:"file_size"`
	RowCount    int                   `json:"row_count"`
	ColumnCount int                   `json:"column_count"`
	Columns     map[string]Column     `json:"columns"`
	Records     []Record              `json:"-"`
	Quality     DataQuality           `json:"quality"`
	Charts      []ChartRecommendation `json:"charts,omitempty"`
	AnalyzedAt  time.Time             `json:"analyzed_at"`
}

// NumericColumns returns the names of all numeric columns, sorted order
// is not guaranteed.
func (d *DatasetInfo) NumericColumns() []string {
	var names []string
	for name, col := range d.Columns {
		if col.IsNumeric() {
			names = append(names, name)
		}
	}
	return names
}

// DatetimeColumns returns the names of all datetime columns
func (d *DatasetInfo) DatetimeColumns() []string {
	var names []string
	for name, col := range d.Columns {
		if col.Type == TypeDatetime {
			names = append(names, name)
		}
	}
	return names
}

// CategoricalColumns returns the names of all categorical columns
func (d *DatasetInfo) CategoricalColumns() []string {
	var names []string
	for name, col := range d.Columns {
		if col.Type == TypeCategorical {
			names = append(names, name)
		}
	}
	return names
}

// ChartKind enumerates supported chart widget types
type ChartKind string

const (
	ChartHistogram ChartKind = "histogram"
	ChartBar       ChartKind = "bar"
	ChartLine      ChartKind = "line"
	ChartScatter   ChartKind = "scatter"
)

// ChartRecommendation suggests one chart widget for the UI layer
type ChartRecommendation struct {
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title"`
	Columns []string  `json:"columns"`
	Reason  string    `json:"reason"`
}
