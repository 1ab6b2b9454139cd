// Package analyze orchestrates the per-URL content scoring pipeline and
// its batch execution over search results.
package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/serpscore"
)

// Ensure Analyzer implements serpscore.Analyzer at compile time.
var _ serpscore.Analyzer = (*Analyzer)(nil)

// Analyzer composes fetching, extraction and scoring into the per-URL
// operation. It is stateless: concurrent Analyze calls share nothing but
// the injected services.
type Analyzer struct {
	Fetcher   serpscore.Fetcher
	Extractor serpscore.Extractor
	Scorer    serpscore.Scorer

	// Detector resolves LanguageAuto from the extracted text. Optional;
	// without one, auto falls back to English.
	Detector serpscore.LanguageDetector

	// RetryDelays are the waits between fetch attempts. Defaults to
	// DefaultRetryDelays. Only timeout and transport failures retry.
	RetryDelays []time.Duration

	// SummaryWords caps the record summary. Defaults to
	// serpscore.DefaultSummaryWords.
	SummaryWords int
}

// Analyze runs the pipeline for one URL. It always returns a well-formed
// record: any failure produces Success=false with neutral score defaults
// and the failure message in the summary, never an error.
func (a *Analyzer) Analyze(ctx context.Context, url string, language serpscore.Language) *serpscore.AnalysisRecord {
	page, err := FetchWithRetryDelays(ctx, url, a.Fetcher, a.retryDelays())
	if err != nil {
		return serpscore.FailureRecord(url, err)
	}

	extracted, err := a.Extractor.Extract(page)
	if err != nil {
		return serpscore.FailureRecord(url, err)
	}

	scores, err := a.Scorer.Score(extracted.Text, a.resolveLanguage(language, extracted.Text))
	if err != nil {
		return serpscore.FailureRecord(url, err)
	}

	combined := serpscore.CombineScores(
		scores.Sentiment.Compound,
		scores.Lexical.KeywordRatio,
		scores.Quality.QualityScore,
	)

	return &serpscore.AnalysisRecord{
		URL:           url,
		Domain:        serpscore.Domain(url),
		Summary:       serpscore.Summarize(extracted.Text, a.SummaryWords),
		Sentiment:     scores.Sentiment,
		Lexical:       scores.Lexical,
		Quality:       scores.Quality,
		CombinedScore: combined,
		ContentLength: extracted.CharLength,
		WordCount:     extracted.WordCount,
		Success:       true,
	}
}

func (a *Analyzer) retryDelays() []time.Duration {
	if a.RetryDelays != nil {
		return a.RetryDelays
	}
	return DefaultRetryDelays()
}

// resolveLanguage picks the scoring language: an explicit choice wins,
// auto consults the detector, and everything else is English.
func (a *Analyzer) resolveLanguage(requested serpscore.Language, text string) serpscore.Language {
	if requested != serpscore.LanguageAuto && requested != "" {
		return requested
	}
	if a.Detector != nil {
		if lang, ok := a.Detector.Detect(text); ok {
			return lang
		}
	}
	return serpscore.LanguageEnglish
}
