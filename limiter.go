package pinpoint

import "context"

// DomainLimiter provides per-domain rate limiting for outbound fetches.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed or the
	// context is canceled.
	Wait(ctx context.Context, domain string) error
}
