package analysis

import (
	"datasight/domain/dataset"
)

// ComputeDataQuality aggregates missing-cell, duplicate-row and outlier
// totals over the entire record sequence. Unlike type inference this pass
// never samples: outlier totals come from a second full-dataset inference
// pass so they are independent of the bounded inference sample.
func (e *Engine) ComputeDataQuality(records []dataset.Record) dataset.DataQuality {
	quality := dataset.DataQuality{}
	if len(records) == 0 {
		return quality
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		for _, v := range rec {
			if dataset.IsMissing(v) {
				quality.MissingValues++
			}
		}
		seen[serializeRecord(rec)] = struct{}{}
	}
	quality.DuplicateRows = len(records) - len(seen)

	fullColumns := e.inferColumnsSampled(records, len(records))
	for _, info := range e.FindOutliers(records, fullColumns) {
		quality.Outliers += info.Count
	}

	return quality
}
