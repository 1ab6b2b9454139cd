package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/mock"
	serpslog "github.com/fwojciec/serpscore/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("logs outcome with score and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, url string, language serpscore.Language) *serpscore.AnalysisRecord {
				return &serpscore.AnalysisRecord{
					URL:           url,
					CombinedScore: 0.595,
					WordCount:     8,
					Success:       true,
				}
			},
		}

		analyzer := serpslog.NewLoggingAnalyzer(inner, logger)
		record := analyzer.Analyze(context.Background(), "https://example.com/story", serpscore.LanguageEnglish)

		require.NotNil(t, record)
		output := buf.String()
		assert.Contains(t, output, "analyze")
		assert.Contains(t, output, "url=https://example.com/story")
		assert.Contains(t, output, "language=en")
		assert.Contains(t, output, "success=true")
		assert.Contains(t, output, "combined_score=0.595")
		assert.Contains(t, output, "words=8")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures through the success flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, url string, language serpscore.Language) *serpscore.AnalysisRecord {
				return serpscore.FailureRecord(url, serpscore.Errorf(serpscore.ETIMEOUT, "fetch timed out"))
			},
		}

		analyzer := serpslog.NewLoggingAnalyzer(inner, logger)
		record := analyzer.Analyze(context.Background(), "https://example.com/slow", serpscore.LanguageAuto)

		require.NotNil(t, record)
		assert.False(t, record.Success)
		assert.Contains(t, buf.String(), "success=false")
	})
}
