package serpscore

import (
	"context"
	"net/url"
	"strings"
)

// AnalysisRecord is the per-URL output of the content analysis pipeline.
// It is immutable once produced and owned by the caller. The JSON field set
// is the export contract; display and export layers use nothing else.
type AnalysisRecord struct {
	URL           string          `json:"url"`
	Domain        string          `json:"domain"`
	Summary       string          `json:"summary"`
	Sentiment     SentimentScores `json:"sentiment"`
	Lexical       LexicalSignals  `json:"lexical"`
	Quality       TextQuality     `json:"quality"`
	CombinedScore float64         `json:"combined_score"`
	ContentLength int             `json:"content_length"`
	WordCount     int             `json:"word_count"`
	Success       bool            `json:"success"`
}

// Analyzer runs the full pipeline for one URL: fetch, extract, score,
// combine. It never returns an error: every failure comes back as a record
// with Success=false, neutral sentiment and an "Error: ..." summary, so a
// batch always yields exactly one record per input URL.
type Analyzer interface {
	Analyze(ctx context.Context, url string, language Language) *AnalysisRecord
}

// Composite score weights.
const (
	WeightCompound     = 0.4
	WeightKeywordRatio = 0.4
	WeightQuality      = 0.2
)

// CombineScores blends the sentiment compound, the keyword ratio and the
// quality bucket into one score. The result is not clamped: the keyword
// ratio is unbounded in principle, so the combined score is a relative
// ranking signal, not a normalized probability.
func CombineScores(compound, keywordRatio, qualityScore float64) float64 {
	return WeightCompound*compound +
		WeightKeywordRatio*keywordRatio +
		WeightQuality*qualityScore
}

// Category is the display label for a score.
type Category string

// Score categories.
const (
	CategoryPositive Category = "Positive"
	CategoryNeutral  Category = "Neutral"
	CategoryNegative Category = "Negative"
)

// CategoryThreshold is the cutoff for Positive/Negative labeling, applied
// uniformly to compound and combined scores.
const CategoryThreshold = 0.05

// Categorize labels a score: > 0.05 Positive, < -0.05 Negative, else
// Neutral.
func Categorize(score float64) Category {
	switch {
	case score > CategoryThreshold:
		return CategoryPositive
	case score < -CategoryThreshold:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// DefaultSummaryWords is the word budget for record summaries.
const DefaultSummaryWords = 100

// Summarize returns the first maxWords words of text, with " ..." appended
// when the text was truncated. A maxWords of zero or less uses the default
// budget.
func Summarize(text string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultSummaryWords
	}
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + " ..."
}

// Domain returns the host component of rawURL, or "" when it cannot be
// parsed. Records need a domain even when the fetch failed so display can
// still group them by site.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// FailureRecord builds the uniform failed-analysis record for a URL:
// Success=false, zero scores, neutral sentiment, and the error message in
// the summary.
func FailureRecord(rawURL string, err error) *AnalysisRecord {
	return &AnalysisRecord{
		URL:       rawURL,
		Domain:    Domain(rawURL),
		Summary:   "Error: " + ErrorMessage(err),
		Sentiment: NeutralSentiment(),
		Success:   false,
	}
}
