package themes

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

type theme struct {
	Name    string
	Keyword string
}

// Names of the fixed theme set, in reporting order.
const (
	Delivery = "entrega"
	Product  = "produto"
	Service  = "atendimento"
	Price    = "preço"
)

type Tagger struct {
	themes []theme
}

func NewTagger() *Tagger {
	return &Tagger{
		themes: []theme{
			{Delivery, "entrega"},
			{Product, "produto"},
			{Service, "atendimento"},
			{Price, "preço"},
		},
	}
}

// Names returns the theme names in reporting order.
func (t *Tagger) Names() []string {
	names := make([]string, len(t.themes))
	for i, th := range t.themes {
		names[i] = th.Name
	}
	return names
}

// Counts returns a fresh counter with every theme present at zero.
func (t *Tagger) Counts() map[string]int {
	counts := make(map[string]int, len(t.themes))
	for _, th := range t.themes {
		counts[th.Name] = 0
	}
	return counts
}

// Tag reports each theme whose keyword occurs anywhere in line. Matching is
// plain substring containment, so "entregador" counts as "entrega".
func (t *Tagger) Tag(line string) []string {
	content := norm.NFC.String(strings.ToLower(line))

	var matched []string
	for _, th := range t.themes {
		if strings.Contains(content, th.Keyword) {
			matched = append(matched, th.Name)
		}
	}
	return matched
}
