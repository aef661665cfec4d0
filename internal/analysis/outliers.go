package analysis

import (
	"datasight/domain/dataset"
)

const maxOutlierExamples = 5

// FindOutliers applies the 1.5 IQR fence rule to every numeric column.
// Column classification comes from the supplied column set; the values
// scanned and the quartiles fencing them always cover the full record
// sequence. Columns with fewer than MinOutlierRows numeric values are
// skipped, as are columns whose fences flag nothing.
func (e *Engine) FindOutliers(records []dataset.Record, columns map[string]dataset.Column) map[string]dataset.OutlierInfo {
	result := make(map[string]dataset.OutlierInfo)
	if len(records) == 0 {
		return result
	}

	for name, col := range columns {
		if !col.IsNumeric() {
			continue
		}

		values := numericValues(records, name)
		if len(values) < e.opts.MinOutlierRows {
			continue
		}

		q1, _, q3 := nearestRankQuartiles(values)
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		info := dataset.OutlierInfo{
			LowerBound: lower,
			UpperBound: upper,
		}

		for _, rec := range records {
			v, ok := rec[name]
			if !ok || dataset.IsMissing(v) {
				continue
			}
			f, ok := parseNumeric(v)
			if !ok {
				continue
			}
			if f < lower || f > upper {
				info.Count++
				if len(info.Examples) < maxOutlierExamples {
					info.Examples = append(info.Examples, rec)
				}
			}
		}

		if info.Count == 0 {
			continue
		}

		info.Percent = float64(info.Count) / float64(len(records)) * 100
		result[name] = info
	}

	return result
}
