package stopwords

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// Languages are the ISO 639-1 codes whose stop word lists are merged.
var Languages = []string{"pt", "en"}

// Set answers membership queries against the Portuguese and English stop word
// lists plus any configured extras. It holds no mutable state after New.
type Set struct {
	languages []string
	extra     map[string]struct{}
}

func New(extra ...string) *Set {
	s := &Set{
		languages: append([]string(nil), Languages...),
		extra:     make(map[string]struct{}, len(extra)),
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.extra[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word, expected lowercase, is a stop word in any of
// the configured languages.
func (s *Set) Contains(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := s.extra[word]; ok {
		return true
	}
	// The library only exposes a cleaning function: a stop word is replaced by
	// blank space, any other word is echoed back.
	for _, lang := range s.languages {
		if strings.TrimSpace(stopwords.CleanString(word, lang, false)) == "" {
			return true
		}
	}
	return false
}
