package serpscore

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RunManifest is the JSON export envelope for one analysis run.
type RunManifest struct {
	RunID       string            `json:"run_id"`
	Query       string            `json:"query"`
	Engine      string            `json:"engine"`
	Language    string            `json:"language"`
	GeneratedAt time.Time         `json:"generated_at"`
	Records     []*AnalysisRecord `json:"records"`
}

// NewRunManifest stamps a fresh run ID over the given records.
func NewRunManifest(query, engine string, language Language, records []*AnalysisRecord) *RunManifest {
	return &RunManifest{
		RunID:       uuid.NewString(),
		Query:       query,
		Engine:      engine,
		Language:    string(language),
		GeneratedAt: time.Now().UTC(),
		Records:     records,
	}
}

// WriteJSON serializes the manifest as indented JSON.
func WriteJSON(w io.Writer, m *RunManifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// csvHeader lists the flattened record columns in output order.
var csvHeader = []string{
	"url", "domain", "success", "combined_score",
	"compound", "positive", "neutral", "negative",
	"positive_keyword_count", "negative_keyword_count", "keyword_ratio",
	"avg_sentence_length", "quality_score",
	"content_length", "word_count", "summary",
}

// WriteCSV serializes records as flat CSV rows, one per record, with a
// header row.
func WriteCSV(w io.Writer, records []*AnalysisRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.URL,
			r.Domain,
			strconv.FormatBool(r.Success),
			formatFloat(r.CombinedScore),
			formatFloat(r.Sentiment.Compound),
			formatFloat(r.Sentiment.Positive),
			formatFloat(r.Sentiment.Neutral),
			formatFloat(r.Sentiment.Negative),
			strconv.Itoa(r.Lexical.PositiveKeywordCount),
			strconv.Itoa(r.Lexical.NegativeKeywordCount),
			formatFloat(r.Lexical.KeywordRatio),
			formatFloat(r.Quality.AvgSentenceLength),
			formatFloat(r.Quality.QualityScore),
			strconv.Itoa(r.ContentLength),
			strconv.Itoa(r.WordCount),
			r.Summary,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
