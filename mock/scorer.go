package mock

import "github.com/fwojciec/serpscore"

var _ serpscore.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of serpscore.Scorer.
type Scorer struct {
	ScoreFn func(text string, language serpscore.Language) (*serpscore.ScoreSet, error)
}

func (s *Scorer) Score(text string, language serpscore.Language) (*serpscore.ScoreSet, error) {
	return s.ScoreFn(text, language)
}
