package testkit

import (
	"testing"
)

func TestGenerator_Deterministic(t *testing.T) {
	first := NewGenerator(7).SalesDataset(30)
	second := NewGenerator(7).SalesDataset(30)

	if len(first.Records) != len(second.Records) {
		t.Fatalf("row counts differ: %d vs %d", len(first.Records), len(second.Records))
	}
	for i := range first.Records {
		for k, v := range first.Records[i] {
			if second.Records[i][k] != v {
				t.Fatalf("row %d key %s differs between runs with the same seed", i, k)
			}
		}
	}
}

func TestGenerator_InjectedDefects(t *testing.T) {
	source := NewGenerator(1).SalesDataset(30)

	// One appended duplicate row
	if len(source.Records) != 31 {
		t.Errorf("expected 30 days plus one duplicate, got %d rows", len(source.Records))
	}

	missing := 0
	outlier := false
	for _, rec := range source.Records {
		for _, v := range rec {
			if v == "" || v == "null" {
				missing++
			}
			if v == "999999.99" {
				outlier = true
			}
		}
	}
	if missing < 2 {
		t.Errorf("expected at least 2 missing cells, got %d", missing)
	}
	if !outlier {
		t.Error("expected the injected discount outlier")
	}
}

func TestGenerator_FlatSeriesAndLinearPair(t *testing.T) {
	g := NewGenerator(3)

	flat := g.FlatSeries(10, 5)
	if len(flat) != 10 {
		t.Fatalf("expected 10 records, got %d", len(flat))
	}
	for _, rec := range flat {
		if rec["value"] != "5" {
			t.Errorf("expected constant value 5, got %v", rec["value"])
		}
	}

	pair := g.LinearPair(20, 2, 1, 0)
	if len(pair) != 20 {
		t.Fatalf("expected 20 records, got %d", len(pair))
	}
	if pair[0]["x"] != "1" || pair[0]["y"] != "3" {
		t.Errorf("expected noiseless y = 2x+1, got x=%v y=%v", pair[0]["x"], pair[0]["y"])
	}
}
