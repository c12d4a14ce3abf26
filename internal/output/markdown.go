package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/strrl/feedback-lens/internal/feedback"
)

type ThemeOrder interface {
	Names() []string
}

func (g *Generator) renderMarkdown(result *feedback.Result) string {
	var sb strings.Builder

	sb.WriteString("# Feedback Report\n\n")
	sb.WriteString(fmt.Sprintf("**Total feedbacks:** %d\n\n", result.TotalFeedbacks))

	sb.WriteString("## Sentiment\n\n")
	sb.WriteString("| Class | Count | Share |\n")
	sb.WriteString("|---|---:|---:|\n")
	counts := result.SentimentCounts
	for _, row := range []struct {
		class feedback.SentimentClass
		count int
	}{
		{feedback.Positive, counts.Positive},
		{feedback.Neutral, counts.Neutral},
		{feedback.Negative, counts.Negative},
	} {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", capitalize(string(row.class)), row.count, percent(row.count, result.TotalFeedbacks)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Themes\n\n")
	sb.WriteString("| Theme | Mentions |\n")
	sb.WriteString("|---|---:|\n")
	for _, name := range g.themeNames(result) {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", name, result.ThemeFrequency[name]))
	}
	sb.WriteString("\n")

	sb.WriteString("## Top Words\n\n")
	if len(result.TopWords) == 0 {
		sb.WriteString("_No qualifying words._\n\n")
	} else {
		for i, wc := range result.TopWords {
			sb.WriteString(fmt.Sprintf("%d. %s (%d)\n", i+1, wc.Word, wc.Count))
		}
		sb.WriteString("\n")
	}

	writeExamples(&sb, "Positive Examples", result.PositiveExamples)
	writeExamples(&sb, "Negative Examples", result.NegativeExamples)

	return sb.String()
}

func writeExamples(sb *strings.Builder, title string, examples []string) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(examples) == 0 {
		sb.WriteString("_None._\n\n")
		return
	}
	for _, ex := range examples {
		sb.WriteString(fmt.Sprintf("> %s\n\n", truncate(ex, 280)))
	}
}

func (g *Generator) themeNames(result *feedback.Result) []string {
	if g.themes != nil {
		return g.themes.Names()
	}
	names := make([]string, 0, len(result.ThemeFrequency))
	for name := range result.ThemeFrequency {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
