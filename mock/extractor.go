package mock

import "github.com/fwojciec/pinpoint"

var _ pinpoint.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pinpoint.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pinpoint.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pinpoint.ExtractResult, error) {
	return e.ExtractFn(html)
}
