package main

import (
	"fmt"

	"github.com/fwojciec/serpscore"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	language, err := resolveLanguage(deps.Config.Score.ScoreLanguage(), c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	if language == serpscore.LanguageAuto {
		language = serpscore.LanguageEnglish
		if deps.Detector != nil {
			if detected, ok := deps.Detector.Detect(extracted.Text); ok {
				language = detected
			}
		}
	}

	scores, err := deps.Scorer.Score(extracted.Text, language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}
	combined := serpscore.CombineScores(scores.Sentiment.Compound, scores.Lexical.KeywordRatio, scores.Quality.QualityScore)

	title := extracted.Title
	if title == "" {
		title = "(no title)"
	}

	fmt.Fprintf(deps.Stdout, "Title:     %s\n", title)
	fmt.Fprintf(deps.Stdout, "URL:       %s\n", c.URL)
	fmt.Fprintf(deps.Stdout, "Language:  %s\n", language)
	fmt.Fprintf(deps.Stdout, "Words:     %d (%d chars)\n", extracted.WordCount, extracted.CharLength)
	fmt.Fprintf(deps.Stdout, "Sentiment: compound %.3f  pos %.3f  neu %.3f  neg %.3f\n",
		scores.Sentiment.Compound, scores.Sentiment.Positive, scores.Sentiment.Neutral, scores.Sentiment.Negative)
	fmt.Fprintf(deps.Stdout, "Keywords:  +%d / -%d (ratio %.3f)\n",
		scores.Lexical.PositiveKeywordCount, scores.Lexical.NegativeKeywordCount, scores.Lexical.KeywordRatio)
	fmt.Fprintf(deps.Stdout, "Quality:   %.1f words/sentence (score %.1f)\n",
		scores.Quality.AvgSentenceLength, scores.Quality.QualityScore)
	fmt.Fprintf(deps.Stdout, "Combined:  %.3f (%s)\n", combined, serpscore.Categorize(combined))

	if extracted.ContentHTML == "" {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "No extractable content.")
		return nil
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
