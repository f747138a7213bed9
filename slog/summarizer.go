package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pinpoint"
)

// Ensure LoggingSummarizer implements pinpoint.Summarizer.
var _ pinpoint.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   pinpoint.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next pinpoint.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, title, content string) (summary *pinpoint.Summary, err error) {
	defer func(begin time.Time) {
		var references int
		if summary != nil {
			references = len(summary.References)
		}
		s.logger.Info("summarize",
			"title", title,
			"content_bytes", len(content),
			"references", references,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, title, content)
}
