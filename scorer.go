package serpscore

// Language selects the keyword and sentiment lexicons used for scoring.
type Language string

// Supported scoring languages. LanguageAuto defers to a LanguageDetector,
// falling back to English when detection is inconclusive. Adding a language
// means adding its lexicons under lexicon/ and a constant here.
const (
	LanguageAuto    Language = "auto"
	LanguageEnglish Language = "en"
	LanguageDanish  Language = "da"
)

// SentimentScores is the four-field polarity split produced by the lexicon
// analyzer. Positive, Neutral and Negative sum to one.
type SentimentScores struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// NeutralSentiment returns the neutral default used for failed analyses and
// empty text.
func NeutralSentiment() SentimentScores {
	return SentimentScores{Compound: 0, Positive: 0, Neutral: 1, Negative: 0}
}

// LexicalSignals counts keyword-list hits in the text. KeywordRatio is
// (positive - negative) / word count, or 0 for empty text.
type LexicalSignals struct {
	PositiveKeywordCount int     `json:"positive_keyword_count"`
	NegativeKeywordCount int     `json:"negative_keyword_count"`
	KeywordRatio         float64 `json:"keyword_ratio"`
}

// TextQuality is the sentence-length prose heuristic.
type TextQuality struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	QualityScore      float64 `json:"quality_score"`
}

// Quality bucket bounds in average words per sentence, and the bucket
// values.
const (
	ShortSentenceThreshold = 5.0
	LongSentenceThreshold  = 40.0

	QualityFragmented = 0.5
	QualityRunOn      = 0.7
	QualityNormal     = 1.0
)

// QualityScore buckets an average sentence length. Both comparisons are
// strict: exactly 5 or exactly 40 words per sentence is still normal prose.
func QualityScore(avgSentenceLength float64) float64 {
	switch {
	case avgSentenceLength < ShortSentenceThreshold:
		return QualityFragmented
	case avgSentenceLength > LongSentenceThreshold:
		return QualityRunOn
	default:
		return QualityNormal
	}
}

// ScoreSet bundles the three scoring outputs for a text.
type ScoreSet struct {
	Sentiment SentimentScores
	Lexical   LexicalSignals
	Quality   TextQuality
}

// Scorer computes sentiment, keyword and quality signals for clean text.
// Scoring is deterministic given identical text and lexicon versions.
type Scorer interface {
	Score(text string, language Language) (*ScoreSet, error)
}
