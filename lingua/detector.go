// Package lingua provides statistical language detection for picking a
// scoring lexicon.
package lingua

import (
	"github.com/fwojciec/serpscore"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements serpscore.LanguageDetector at compile time.
var _ serpscore.LanguageDetector = (*Detector)(nil)

// Detector distinguishes the supported scoring languages. Detection is
// restricted to those languages; text lingua cannot attribute with enough
// distance between candidates reports ok=false and the caller falls back
// to English.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector for the supported scoring languages.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Danish).
			WithMinimumRelativeDistance(0.25).
			Build(),
	}
}

// Detect maps the detected language onto a scoring language.
func (d *Detector) Detect(text string) (serpscore.Language, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	switch lang {
	case lingua.English:
		return serpscore.LanguageEnglish, true
	case lingua.Danish:
		return serpscore.LanguageDanish, true
	}
	return "", false
}
