package analysis

import (
	"fmt"
	"testing"

	"datasight/domain/dataset"
)

func recordsFromColumn(values []any) []dataset.Record {
	records := make([]dataset.Record, len(values))
	for i, v := range values {
		records[i] = dataset.Record{"col": v}
	}
	return records
}

func TestInferColumns_TypePrecedence(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		name     string
		values   []any
		expected dataset.ColumnType
	}{
		{
			name:     "numeric strings are numeric despite low cardinality",
			values:   []any{"1", "2", "3", "1", "2", "3", "1", "2", "3", "1"},
			expected: dataset.TypeNumeric,
		},
		{
			name:     "native floats are numeric",
			values:   []any{1.5, 2.5, 3.5},
			expected: dataset.TypeNumeric,
		},
		{
			name:     "boolean tokens are boolean",
			values:   []any{"yes", "no", "y", "n", "true", "false"},
			expected: dataset.TypeBoolean,
		},
		{
			name:     "date strings are datetime",
			values:   []any{"2024-01-01", "2024-02-15", "03/20/2024"},
			expected: dataset.TypeDatetime,
		},
		{
			name: "low cardinality strings are categorical",
			values: []any{
				"red", "green", "blue", "red", "green", "blue", "red", "green",
				"blue", "red", "green", "blue", "red", "green", "blue", "red",
			},
			expected: dataset.TypeCategorical,
		},
		{
			name:     "high cardinality strings are text",
			values:   []any{"alpha", "bravo", "charlie", "delta", "echo"},
			expected: dataset.TypeText,
		},
		{
			name:     "mixed numeric and text falls through",
			values:   []any{"1", "2", "abc", "def", "ghi"},
			expected: dataset.TypeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns := engine.InferColumns(recordsFromColumn(tt.values))
			col, ok := columns["col"]
			if !ok {
				t.Fatal("expected a column named col")
			}
			if col.Type != tt.expected {
				t.Errorf("expected type %s, got %s", tt.expected, col.Type)
			}
		})
	}
}

func TestInferColumns_EmptyDataset(t *testing.T) {
	engine := NewDefaultEngine()
	columns := engine.InferColumns(nil)
	if len(columns) != 0 {
		t.Errorf("expected empty column map, got %d entries", len(columns))
	}
}

func TestInferColumns_AllMissingFallsToText(t *testing.T) {
	engine := NewDefaultEngine()
	records := recordsFromColumn([]any{"", nil, "null", "undefined"})

	columns := engine.InferColumns(records)
	col := columns["col"]

	if col.Type != dataset.TypeText {
		t.Errorf("expected text, got %s", col.Type)
	}
	if col.MissingCount != 4 {
		t.Errorf("expected 4 missing, got %d", col.MissingCount)
	}
	if col.MissingPercent != 100 {
		t.Errorf("expected 100%% missing, got %.1f", col.MissingPercent)
	}
	if col.UniqueCount != 0 {
		t.Errorf("expected 0 unique values, got %d", col.UniqueCount)
	}
}

func TestInferColumns_MissingExcludedFromTypeChecks(t *testing.T) {
	engine := NewDefaultEngine()
	records := recordsFromColumn([]any{"1", "", "2", "null", "3"})

	columns := engine.InferColumns(records)
	col := columns["col"]

	if col.Type != dataset.TypeNumeric {
		t.Errorf("expected numeric with missing values excluded, got %s", col.Type)
	}
	if col.MissingCount != 2 {
		t.Errorf("expected 2 missing, got %d", col.MissingCount)
	}
	if col.UniqueCount != 3 {
		t.Errorf("expected 3 unique, got %d", col.UniqueCount)
	}
}

func TestInferColumns_SampleBound(t *testing.T) {
	engine := NewDefaultEngine()

	// Numeric in the first 100 rows, text afterwards: inference must not
	// see past the sample.
	var records []dataset.Record
	for i := 0; i < 100; i++ {
		records = append(records, dataset.Record{"col": fmt.Sprintf("%d", i)})
	}
	for i := 0; i < 50; i++ {
		records = append(records, dataset.Record{"col": "not a number"})
	}

	columns := engine.InferColumns(records)
	if got := columns["col"].Type; got != dataset.TypeNumeric {
		t.Errorf("expected numeric from 100-row sample, got %s", got)
	}
}

func TestInferColumns_ColumnsFromFirstRecord(t *testing.T) {
	engine := NewDefaultEngine()
	records := []dataset.Record{
		{"a": "1", "b": "x"},
		{"a": "2", "b": "y", "extra": "ignored"},
	}

	columns := engine.InferColumns(records)
	if len(columns) != 2 {
		t.Fatalf("expected 2 columns from first record, got %d", len(columns))
	}
	if _, ok := columns["extra"]; ok {
		t.Error("keys absent from the first record must not become columns")
	}
}

func TestInferColumns_NumericStatsPopulated(t *testing.T) {
	engine := NewDefaultEngine()
	records := recordsFromColumn([]any{"1", "2", "3", "4", "5"})

	columns := engine.InferColumns(records)
	col := columns["col"]
	if col.Stats == nil {
		t.Fatal("expected stats for a numeric column")
	}
	if col.Stats.Mean != 3 {
		t.Errorf("expected mean 3, got %g", col.Stats.Mean)
	}

	boolRecords := recordsFromColumn([]any{"yes", "no", "yes"})
	if got := engine.InferColumns(boolRecords)["col"]; got.Stats != nil {
		t.Error("non-numeric columns must not carry stats")
	}
}
