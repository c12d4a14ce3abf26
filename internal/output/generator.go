package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/strrl/feedback-lens/internal/feedback"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json or markdown)", s)
}

type Generator struct {
	format Format
	themes ThemeOrder
}

// NewGenerator renders results in format. themes fixes the order of the theme
// table in Markdown; nil falls back to alphabetical order.
func NewGenerator(format Format, themes ThemeOrder) *Generator {
	return &Generator{format: format, themes: themes}
}

func (g *Generator) Render(result *feedback.Result) ([]byte, error) {
	switch g.format {
	case FormatMarkdown:
		return []byte(g.renderMarkdown(result)), nil
	default:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode result: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func (g *Generator) Write(w io.Writer, result *feedback.Result) error {
	data, err := g.Render(result)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (g *Generator) WriteFile(path string, result *feedback.Result) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	data, err := g.Render(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
