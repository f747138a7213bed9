package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pinpoint"
)

// Ensure LoggingResolver implements pinpoint.Resolver.
var _ pinpoint.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging. A no-match (ENOTFOUND) is
// logged as an outcome, not an error.
type LoggingResolver struct {
	next   pinpoint.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next pinpoint.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(ctx context.Context, reference string) (match *pinpoint.Match, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"reference", reference,
			"duration", time.Since(begin),
		}
		switch {
		case match != nil:
			attrs = append(attrs, "tag", match.Element.TagName(), "score", match.Score)
		case pinpoint.ErrorCode(err) == pinpoint.ENOTFOUND:
			attrs = append(attrs, "outcome", "no match")
		default:
			attrs = append(attrs, "err", err)
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, reference)
}
