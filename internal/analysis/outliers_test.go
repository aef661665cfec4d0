package analysis

import (
	"fmt"
	"testing"

	"datasight/domain/dataset"
)

func numericColumn(name string) map[string]dataset.Column {
	return map[string]dataset.Column{
		name: {Name: name, Type: dataset.TypeNumeric},
	}
}

func TestFindOutliers_IQRFences(t *testing.T) {
	engine := NewDefaultEngine()
	records := recordsFromColumn([]any{"1", "2", "3", "4", "5", "100"})

	outliers := engine.FindOutliers(records, numericColumn("col"))
	info, ok := outliers["col"]
	if !ok {
		t.Fatal("expected outliers for col")
	}

	// Q1=2, Q3=4, IQR=2 -> fences at -1 and 7
	if info.LowerBound != -1 || info.UpperBound != 7 {
		t.Errorf("expected fences (-1, 7), got (%g, %g)", info.LowerBound, info.UpperBound)
	}
	if info.Count != 1 {
		t.Errorf("expected exactly one outlier (100), got %d", info.Count)
	}
	if len(info.Examples) != 1 {
		t.Fatalf("expected 1 example record, got %d", len(info.Examples))
	}
	if info.Examples[0]["col"] != "100" {
		t.Errorf("expected the offending row as example, got %v", info.Examples[0])
	}
}

func TestFindOutliers_SkipsSmallColumns(t *testing.T) {
	engine := NewDefaultEngine()
	records := recordsFromColumn([]any{"1", "2", "1000"})

	outliers := engine.FindOutliers(records, numericColumn("col"))
	if len(outliers) != 0 {
		t.Errorf("columns with fewer than 5 values must be skipped, got %v", outliers)
	}
}

func TestFindOutliers_SkipsNonNumericColumns(t *testing.T) {
	engine := NewDefaultEngine()
	records := recordsFromColumn([]any{"a", "b", "c", "d", "e", "f"})
	columns := map[string]dataset.Column{
		"col": {Name: "col", Type: dataset.TypeText},
	}

	if outliers := engine.FindOutliers(records, columns); len(outliers) != 0 {
		t.Errorf("expected no outliers for text column, got %v", outliers)
	}
}

func TestFindOutliers_ExampleCapAndPercent(t *testing.T) {
	engine := NewDefaultEngine()

	var records []dataset.Record
	for i := 0; i < 92; i++ {
		records = append(records, dataset.Record{"col": fmt.Sprintf("%d", 10+i%3)})
	}
	for i := 0; i < 8; i++ {
		records = append(records, dataset.Record{"col": "9999"})
	}

	outliers := engine.FindOutliers(records, numericColumn("col"))
	info, ok := outliers["col"]
	if !ok {
		t.Fatal("expected outliers")
	}
	if info.Count != 8 {
		t.Errorf("expected 8 outliers, got %d", info.Count)
	}
	if len(info.Examples) != maxOutlierExamples {
		t.Errorf("expected examples capped at %d, got %d", maxOutlierExamples, len(info.Examples))
	}
	if info.Percent != 8 {
		t.Errorf("expected 8%% of 100 rows, got %g", info.Percent)
	}
}
