package parser

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strrl/feedback-lens/internal/db"
)

type Parser struct {
	db *sql.DB
}

func NewParser() (*Parser, error) {
	database, err := db.GetDB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}

	return &Parser{db: database}, nil
}

// ReadText loads a feedback file as one newline separated blob, one feedback
// per line. Plain text files are returned as is. Tabular files are scanned
// through DuckDB and line breaks inside a cell are flattened so each row stays
// a single feedback.
func (p *Parser) ReadText(src Source) (string, error) {
	format, err := DetectFormat(src.Path)
	if err != nil {
		return "", err
	}

	if format == FormatText {
		return ReadTextFile(src.Path)
	}

	rows, err := p.FetchColumn(src, format)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

func (p *Parser) FetchColumn(src Source, format Format) ([]string, error) {
	if err := p.loadExtension(format); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT CAST(%[1]s AS VARCHAR) AS feedback
		FROM %[2]s
		WHERE %[1]s IS NOT NULL
	`, quoteIdent(src.column()), tableFunction(src.Path, format))

	rows, err := p.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s column %q: %w", src.Path, src.column(), err)
	}
	defer rows.Close()

	var feedbacks []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			continue
		}
		text = flatten(text)
		if text == "" {
			continue
		}
		feedbacks = append(feedbacks, text)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return feedbacks, nil
}

// Columns lists the column names DuckDB infers for a tabular file.
func (p *Parser) Columns(path string) ([]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatText {
		return nil, fmt.Errorf("%s is plain text and has no columns", path)
	}
	if err := p.loadExtension(format); err != nil {
		return nil, err
	}

	rows, err := p.db.Query(fmt.Sprintf(`DESCRIBE SELECT * FROM %s`, tableFunction(path, format)))
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", path, err)
	}

	var names []string
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			continue
		}
		if name, ok := values[0].(string); ok {
			names = append(names, name)
		}
	}

	return names, rows.Err()
}

func (p *Parser) loadExtension(format Format) error {
	name, ok := formatExtension[format]
	if !ok {
		return nil
	}
	return db.LoadExtension(p.db, name)
}

func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// ReadAll drains r, typically stdin.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func tableFunction(path string, format Format) string {
	lit := quoteLiteral(path)
	switch format {
	case FormatCSV:
		return fmt.Sprintf("read_csv_auto(%s, header = true)", lit)
	case FormatJSONL:
		return fmt.Sprintf("read_json(%s, format = 'auto', union_by_name = true, ignore_errors = true)", lit)
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", lit)
	}
	return lit
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
