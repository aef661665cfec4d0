package ports

import "datasight/domain/dataset"

// TabularSource is a parsed file: ordered headers plus raw records.
type TabularSource struct {
	FileName string
	FileSize int64
	Headers  []string
	Records  []dataset.Record
}

// DatasetReader parses a tabular file into records. Implementations fail
// on unsupported formats rather than guessing.
type DatasetReader interface {
	Read(path string) (*TabularSource, error)
}
