package lexicon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	MinWeight = -4.0
	MaxWeight = 4.0
)

// Lexicon maps a lowercase term (single word or space separated phrase) to a
// polarity weight. The zero value is an empty lexicon. A Lexicon is never
// mutated after Build returns, so it can be shared across goroutines.
type Lexicon struct {
	entries   map[string]float64
	maxPhrase int
}

// Build copies base and applies each overlay in order. A key present in more
// than one table takes the value from the last table that defines it.
// Overlay keys are normalized; base keys are copied verbatim.
func Build(base map[string]float64, overlays ...map[string]float64) Lexicon {
	size := len(base)
	for _, o := range overlays {
		size += len(o)
	}

	entries := make(map[string]float64, size)
	for term, weight := range base {
		entries[term] = weight
	}
	for _, overlay := range overlays {
		for term, weight := range overlay {
			key := Normalize(term)
			if key == "" {
				continue
			}
			entries[key] = weight
		}
	}

	maxPhrase := 1
	for term := range entries {
		if n := len(strings.Fields(term)); n > maxPhrase {
			maxPhrase = n
		}
	}

	return Lexicon{entries: entries, maxPhrase: maxPhrase}
}

// Normalize lowercases, trims and NFC-composes a term, collapsing inner
// whitespace to single spaces.
func Normalize(term string) string {
	term = norm.NFC.String(strings.ToLower(term))
	return strings.Join(strings.Fields(term), " ")
}

func (l Lexicon) Weight(term string) (float64, bool) {
	w, ok := l.entries[term]
	return w, ok
}

func (l Lexicon) Contains(term string) bool {
	_, ok := l.entries[term]
	return ok
}

// Terms returns a copy of every term and its weight.
func (l Lexicon) Terms() map[string]float64 {
	terms := make(map[string]float64, len(l.entries))
	for term, weight := range l.entries {
		terms[term] = weight
	}
	return terms
}

func (l Lexicon) Len() int {
	return len(l.entries)
}

// MaxPhraseWords is the word count of the longest multi-word term.
func (l Lexicon) MaxPhraseWords() int {
	if l.maxPhrase == 0 {
		return 1
	}
	return l.maxPhrase
}
