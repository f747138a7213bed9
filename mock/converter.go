package mock

import "github.com/fwojciec/pinpoint"

var _ pinpoint.Converter = (*Converter)(nil)

// Converter is a mock implementation of pinpoint.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
