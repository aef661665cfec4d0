package analysis

import (
	"datasight/domain/dataset"
)

// InferColumns classifies every column found in the first record and
// records per-column unique/missing counts. Classification runs over a
// bounded sample of rows (the first SampleSize) so inference stays cheap
// on large files; missing cells are excluded from the type checks.
//
// Precedence is numeric, boolean, datetime, categorical, then text. The
// order matters: a fully numeric column is never demoted to categorical
// on low cardinality.
func (e *Engine) InferColumns(records []dataset.Record) map[string]dataset.Column {
	return e.inferColumnsSampled(records, e.opts.SampleSize)
}

// inferColumnsSampled is the sample-size-explicit variant. The quality
// scorer reuses it with sampleSize == len(records) for its full-dataset
// second pass.
func (e *Engine) inferColumnsSampled(records []dataset.Record, sampleSize int) map[string]dataset.Column {
	columns := make(map[string]dataset.Column)
	if len(records) == 0 {
		return columns
	}

	sample := records
	if sampleSize > 0 && len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	// Column set comes from the first record's keys. Keys appearing only
	// in later records are ignored; keys absent from a later record count
	// as missing cells for that row.
	for name := range records[0] {
		columns[name] = e.inferColumn(sample, name)
	}

	return columns
}

func (e *Engine) inferColumn(sample []dataset.Record, name string) dataset.Column {
	col := dataset.Column{Name: name, Type: dataset.TypeText}

	var nonMissing []any
	distinct := make(map[string]struct{})

	for _, rec := range sample {
		v, ok := rec[name]
		if !ok || dataset.IsMissing(v) {
			col.MissingCount++
			continue
		}
		nonMissing = append(nonMissing, v)
		distinct[valueString(v)] = struct{}{}
	}

	col.UniqueCount = len(distinct)
	if len(sample) > 0 {
		col.MissingPercent = float64(col.MissingCount) / float64(len(sample)) * 100
	}

	// A fully missing column stays text with 100% missing
	if len(nonMissing) == 0 {
		return col
	}

	col.Type = classify(nonMissing, len(distinct), len(sample))

	if col.Type == dataset.TypeNumeric {
		values := make([]float64, 0, len(nonMissing))
		for _, v := range nonMissing {
			if f, ok := parseNumeric(v); ok {
				values = append(values, f)
			}
		}
		if stats, ok := ComputeNumericStats(values); ok {
			col.Stats = &stats
		}
	}

	return col
}

// classify applies the precedence-ordered type rules to a column's
// non-missing sampled values.
func classify(values []any, distinctCount, sampleSize int) dataset.ColumnType {
	allNumeric := true
	for _, v := range values {
		if _, ok := parseNumeric(v); !ok {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return dataset.TypeNumeric
	}

	allBoolean := true
	for _, v := range values {
		if !parseBoolean(v) {
			allBoolean = false
			break
		}
	}
	if allBoolean {
		return dataset.TypeBoolean
	}

	allDates := true
	for _, v := range values {
		if _, ok := parseDate(v); !ok {
			allDates = false
			break
		}
	}
	if allDates {
		return dataset.TypeDatetime
	}

	if sampleSize > 0 && float64(distinctCount) < float64(sampleSize)*0.2 {
		return dataset.TypeCategorical
	}

	return dataset.TypeText
}
