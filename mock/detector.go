package mock

import "github.com/fwojciec/serpscore"

var _ serpscore.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of serpscore.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) (serpscore.Language, bool)
}

func (d *LanguageDetector) Detect(text string) (serpscore.Language, bool) {
	return d.DetectFn(text)
}
