package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/strrl/feedback-lens/internal/lexicon"
)

const (
	boostIncr = 0.293
	boostDecr = -0.293

	// joins the words of a multi-word lexicon term into one token
	phraseJoiner = "_"

	asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var portugueseNegations = []string{
	"não", "nao", "nunca", "jamais", "nem", "sem",
	"nada", "nenhum", "nenhuma", "ninguém", "ninguem",
}

var portugueseBoosters = map[string]float64{
	"muito": boostIncr, "muita": boostIncr, "muitíssimo": boostIncr, "bastante": boostIncr,
	"extremamente": boostIncr, "totalmente": boostIncr, "completamente": boostIncr,
	"realmente": boostIncr, "demasiado": boostIncr, "tão": boostIncr, "tao": boostIncr,
	"pouco": boostDecr, "meio": boostDecr, "levemente": boostDecr, "ligeiramente": boostDecr,
	"quase": boostDecr, "um pouco": boostDecr,
}

// govader only recognizes "but" as a contrastive conjunction.
var contrastives = map[string]struct{}{
	"mas": {}, "porém": {}, "porem": {}, "contudo": {}, "entretanto": {},
}

// VaderEngine scores text with govader over a merged lexicon. Multi-word
// lexicon terms are fused into single tokens before scoring, so "não funciona"
// takes its own weight instead of a negated "funciona".
//
// The analyzer is read-only after construction and safe for concurrent use.
type VaderEngine struct {
	sia       *govader.SentimentIntensityAnalyzer
	phrases   map[string]struct{}
	maxPhrase int
}

func NewVaderEngine(lex lexicon.Lexicon) *VaderEngine {
	sia := govader.NewSentimentIntensityAnalyzer()

	terms := lex.Terms()
	sia.Lexicon = make(map[string]float64, len(terms))
	phrases := make(map[string]struct{})
	for term, weight := range terms {
		if strings.Contains(term, " ") {
			term = strings.ReplaceAll(term, " ", phraseJoiner)
			phrases[term] = struct{}{}
		}
		sia.Lexicon[term] = weight
	}

	sia.Constants.NegateList = append(sia.Constants.NegateList, portugueseNegations...)
	for word, incr := range portugueseBoosters {
		sia.Constants.BoosterDict[word] = incr
	}

	return &VaderEngine{sia: sia, phrases: phrases, maxPhrase: lex.MaxPhraseWords()}
}

// Score returns the compound polarity of text in [-1, 1], rounded to four
// decimals.
func (e *VaderEngine) Score(text string) float64 {
	compound := e.sia.PolarityScores(e.prepare(text)).Compound
	return scalar.Round(compound, 4)
}

// prepare collapses whitespace, fuses lexicon phrases and rewrites Portuguese
// contrastive conjunctions to "but".
func (e *VaderEngine) prepare(text string) string {
	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		if fused, span := e.fuse(tokens, i); span > 1 {
			out = append(out, fused)
			i += span - 1
			continue
		}

		tok := tokens[i]
		if _, ok := contrastives[strings.ToLower(stripPuncIfWord(tok))]; ok {
			tok = contrastiveToken(tok)
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

// fuse joins the longest run of tokens starting at i that forms a lexicon
// phrase. It returns a span of 1 when no phrase matches.
func (e *VaderEngine) fuse(tokens []string, i int) (string, int) {
	for n := min(e.maxPhrase, len(tokens)-i); n > 1; n-- {
		joined := strings.Join(tokens[i:i+n], phraseJoiner)
		if _, ok := e.phrases[strings.ToLower(stripPuncIfWord(joined))]; ok {
			return joined, n
		}
	}
	return tokens[i], 1
}

// contrastiveToken keeps surrounding punctuation and ALL-CAPS so the
// rewritten token does not change the caps differential.
func contrastiveToken(tok string) string {
	word := stripPuncIfWord(tok)
	but := "but"
	if word == strings.ToUpper(word) {
		but = "BUT"
	}
	return strings.Replace(tok, word, but, 1)
}

// stripPuncIfWord mirrors govader's token cleanup: surrounding punctuation is
// dropped unless fewer than three bytes would remain.
func stripPuncIfWord(token string) string {
	stripped := strings.Trim(token, asciiPunct)
	if len(stripped) < 3 {
		return token
	}
	return stripped
}
