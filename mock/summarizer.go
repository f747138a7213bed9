package mock

import (
	"context"

	"github.com/fwojciec/pinpoint"
)

var _ pinpoint.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pinpoint.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, content string) (*pinpoint.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, content string) (*pinpoint.Summary, error) {
	return s.SummarizeFn(ctx, title, content)
}
