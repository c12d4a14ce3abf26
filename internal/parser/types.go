package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatText    Format = "text"
	FormatCSV     Format = "csv"
	FormatJSONL   Format = "jsonl"
	FormatParquet Format = "parquet"
)

// DuckDB extension each tabular format needs; CSV is built in.
var formatExtension = map[Format]string{
	FormatJSONL:   "json",
	FormatParquet: "parquet",
}

// DefaultColumn matches the field name accepted by the HTTP API.
const DefaultColumn = "text"

var extensionToFormat = map[string]Format{
	".txt":     FormatText,
	".text":    FormatText,
	".csv":     FormatCSV,
	".tsv":     FormatCSV,
	".jsonl":   FormatJSONL,
	".ndjson":  FormatJSONL,
	".json":    FormatJSONL,
	".parquet": FormatParquet,
}

// Source names a feedback file and, for tabular formats, the column holding
// one feedback per row.
type Source struct {
	Path   string
	Column string
}

func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensionToFormat[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unsupported feedback file %q (want .txt, .csv, .tsv, .jsonl, .ndjson, .json or .parquet)", path)
}

func (s Source) column() string {
	if strings.TrimSpace(s.Column) == "" {
		return DefaultColumn
	}
	return s.Column
}
