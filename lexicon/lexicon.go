// Package lexicon provides a word-list based implementation of
// serpscore.Scorer: sentiment polarity from per-language sentiment terms,
// keyword counts from fixed keyword lists, and a sentence-length quality
// heuristic.
package lexicon

// Lexicon holds the word lists for one language. Sentiment terms are
// matched per token; keyword terms are matched as case-insensitive
// substrings, so stems also cover their inflections ("great" hits
// "greatest").
type Lexicon struct {
	positive map[string]bool
	negative map[string]bool

	positiveKeywords []string
	negativeKeywords []string
}

func newLexicon(positive, negative, positiveKeywords, negativeKeywords []string) *Lexicon {
	return &Lexicon{
		positive:         wordSet(positive),
		negative:         wordSet(negative),
		positiveKeywords: positiveKeywords,
		negativeKeywords: negativeKeywords,
	}
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
