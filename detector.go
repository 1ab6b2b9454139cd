package serpscore

// LanguageDetector guesses the language of a text so the matching lexicons
// are used when the caller asked for LanguageAuto.
type LanguageDetector interface {
	// Detect returns the detected language and true, or ok=false when
	// detection is inconclusive (empty text, or none of the supported
	// languages fits).
	Detect(text string) (Language, bool)
}
