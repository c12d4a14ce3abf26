package frequency

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/neurosnap/sentences.v1/english"

	"github.com/strrl/feedback-lens/internal/feedback"
)

const DefaultTopK = 10

type StopwordSet interface {
	Contains(word string) bool
}

// Analyzer counts alphabetic, non-stop-word tokens. It is read-only after
// construction and safe for concurrent use.
type Analyzer struct {
	stopwords StopwordSet
	sentences func(text string) []string
	topK      int
}

func NewAnalyzer(stop StopwordSet, topK int) (*Analyzer, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	split := func(text string) []string {
		var out []string
		for _, s := range tokenizer.Tokenize(text) {
			out = append(out, s.Text)
		}
		return out
	}

	return &Analyzer{stopwords: stop, sentences: split, topK: topK}, nil
}

func (a *Analyzer) TopK() int {
	return a.topK
}

// Tokens lowercases text and splits it into word tokens, sentence by sentence.
func (a *Analyzer) Tokens(text string) []string {
	text = norm.NFC.String(strings.ToLower(text))

	var tokens []string
	for _, sentence := range a.sentences(text) {
		tokens = append(tokens, words(sentence)...)
	}
	return tokens
}

// Top returns the most frequent qualifying tokens, at most TopK of them.
func (a *Analyzer) Top(text string) []feedback.WordCount {
	return a.TopN(text, a.topK)
}

// TopN ranks qualifying tokens by count. Ties keep the order in which the
// words first appeared. The result is never nil.
func (a *Analyzer) TopN(text string, n int) []feedback.WordCount {
	counts := make(map[string]int)
	var order []string
	for _, token := range a.Tokens(text) {
		if !isAlpha(token) || a.stopwords.Contains(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	ranked := make([]feedback.WordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, feedback.WordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// words segments one sentence on Unicode word boundaries. A period attached
// to a word in the middle of the sentence stays on that word, as in "sr.",
// so abbreviations do not count as plain words.
func words(sentence string) []string {
	var segments []string
	state := -1
	rest := sentence
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(seg) == "" {
			segments = append(segments, "")
			continue
		}
		segments = append(segments, seg)
	}

	last := -1
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			last = i
			break
		}
	}

	var tokens []string
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if seg == "." && i != last && i > 0 && segments[i-1] != "" && len(tokens) > 0 {
			tokens[len(tokens)-1] += seg
			continue
		}
		tokens = append(tokens, seg)
	}
	return tokens
}

func isAlpha(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
