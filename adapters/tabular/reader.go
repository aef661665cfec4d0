package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"datasight/domain/dataset"
	"datasight/internal"
	apperrors "datasight/internal/errors"
	"datasight/ports"
)

// Reader parses CSV and Excel files into raw records. It implements
// ports.DatasetReader.
type Reader struct {
	log *internal.Logger
}

// NewReader creates a file reader
func NewReader(log *internal.Logger) *Reader {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Reader{log: log}
}

// Read parses the file at path, dispatching on extension. Unsupported
// extensions fail with an UNSUPPORTED_FORMAT error.
func (r *Reader) Read(path string) (*ports.TabularSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.FileRead(path, err)
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = r.readCSV(path)
	case ".xlsx", ".xls":
		rows, err = r.readExcel(path)
	default:
		return nil, apperrors.UnsupportedFormat(ext)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, apperrors.InvalidInput("file must have a header row and at least one data row")
	}

	source := r.buildSource(rows)
	source.FileName = filepath.Base(path)
	source.FileSize = info.Size()

	r.log.Info("parsed %s (%d columns, %d rows)", source.FileName, len(source.Headers), len(source.Records))
	return source, nil
}

func (r *Reader) readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.FileRead(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse CSV")
	}
	return rows, nil
}

func (r *Reader) readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.FileRead(path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.InvalidInput("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return rows, nil
}

// buildSource converts raw string rows into records keyed by trimmed
// header names. Fully empty rows are dropped so row counts reflect real
// data.
func (r *Reader) buildSource(rows [][]string) *ports.TabularSource {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]dataset.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rec := make(dataset.Record, len(headers))
		for j, header := range headers {
			if j < len(row) {
				rec[header] = strings.TrimSpace(row[j])
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}

	return &ports.TabularSource{
		Headers: headers,
		Records: records,
	}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
