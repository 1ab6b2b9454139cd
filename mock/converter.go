package mock

import "github.com/fwojciec/serpscore"

var _ serpscore.Converter = (*Converter)(nil)

// Converter is a mock implementation of serpscore.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
