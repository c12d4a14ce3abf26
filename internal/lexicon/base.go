package lexicon

import "github.com/jonreiter/govader"

// Base returns a fresh copy of the general-purpose VADER lexicon.
func Base() map[string]float64 {
	sia := govader.NewSentimentIntensityAnalyzer()

	base := make(map[string]float64, len(sia.Lexicon))
	for term, weight := range sia.Lexicon {
		base[term] = weight
	}
	return base
}
