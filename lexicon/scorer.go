package lexicon

import (
	"math"
	"regexp"
	"strings"

	"github.com/fwojciec/serpscore"
)

// Ensure Scorer implements serpscore.Scorer at compile time.
var _ serpscore.Scorer = (*Scorer)(nil)

// Scorer scores text against per-language word lists.
type Scorer struct {
	lexicons map[serpscore.Language]*Lexicon
}

// NewScorer creates a Scorer with the built-in English and Danish lexicons.
func NewScorer() *Scorer {
	return &Scorer{
		lexicons: map[serpscore.Language]*Lexicon{
			serpscore.LanguageEnglish: English(),
			serpscore.LanguageDanish:  Danish(),
		},
	}
}

// Score computes sentiment, keyword and quality signals for the text.
// Unknown languages fall back to the English lexicon. Empty text yields
// neutral sentiment, zero keyword signals and the fragmented quality
// bucket; it is a valid zero-signal result, never an error.
func (s *Scorer) Score(text string, language serpscore.Language) (*serpscore.ScoreSet, error) {
	lex, ok := s.lexicons[language]
	if !ok {
		lex = s.lexicons[serpscore.LanguageEnglish]
	}

	// Sentiment works on cleaned tokens; the keyword ratio and the
	// sentence heuristic are normalized by the record-level word count
	// (whitespace-delimited tokens).
	tokens := tokenize(text)
	wordCount := serpscore.CountWords(text)

	return &serpscore.ScoreSet{
		Sentiment: sentiment(tokens, lex),
		Lexical:   keywordSignals(text, wordCount, lex),
		Quality:   quality(text, wordCount),
	}, nil
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// tokenize lowercases the text, strips punctuation and splits into words.
func tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// sentiment derives the four-field polarity split from sentiment-lexicon
// hits: hit rates for positive/negative, the remainder as neutral, and the
// hit balance squashed into [-1, 1] with the alpha=15 curve VADER-style
// analyzers use.
func sentiment(tokens []string, lex *Lexicon) serpscore.SentimentScores {
	if len(tokens) == 0 {
		return serpscore.NeutralSentiment()
	}

	var pos, neg int
	for _, tok := range tokens {
		switch {
		case lex.positive[tok]:
			pos++
		case lex.negative[tok]:
			neg++
		}
	}

	total := float64(len(tokens))
	p := float64(pos) / total
	n := float64(neg) / total

	return serpscore.SentimentScores{
		Compound: normalizeHits(float64(pos - neg)),
		Positive: p,
		Neutral:  1 - p - n,
		Negative: n,
	}
}

func normalizeHits(balance float64) float64 {
	if balance == 0 {
		return 0
	}
	return balance / math.Sqrt(balance*balance+15)
}

// keywordSignals counts case-insensitive substring occurrences of the
// keyword lists and normalizes the balance by word count.
func keywordSignals(text string, wordCount int, lex *Lexicon) serpscore.LexicalSignals {
	lower := strings.ToLower(text)

	var sig serpscore.LexicalSignals
	for _, kw := range lex.positiveKeywords {
		sig.PositiveKeywordCount += strings.Count(lower, kw)
	}
	for _, kw := range lex.negativeKeywords {
		sig.NegativeKeywordCount += strings.Count(lower, kw)
	}
	if wordCount > 0 {
		sig.KeywordRatio = float64(sig.PositiveKeywordCount-sig.NegativeKeywordCount) /
			float64(wordCount)
	}
	return sig
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// quality computes the average sentence length and its bucket. Empty text
// is an explicit branch so there is never a division by zero.
func quality(text string, wordCount int) serpscore.TextQuality {
	if strings.TrimSpace(text) == "" {
		return serpscore.TextQuality{
			AvgSentenceLength: 0,
			QualityScore:      serpscore.QualityScore(0),
		}
	}

	avg := float64(wordCount) / float64(countSentences(text))
	return serpscore.TextQuality{
		AvgSentenceLength: avg,
		QualityScore:      serpscore.QualityScore(avg),
	}
}

// countSentences splits on runs of sentence terminators and counts the
// non-empty segments. Text without any terminator is one sentence. The
// splitter is deliberately naive about abbreviations and decimals.
func countSentences(text string) int {
	n := 0
	for _, seg := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}
