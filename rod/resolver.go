package rod

import (
	"context"
	"strings"

	"github.com/fwojciec/pinpoint"
)

// Ensure Resolver implements pinpoint.Resolver at compile time.
var _ pinpoint.Resolver = (*Resolver)(nil)

// Resolver resolves references against an open live page. Each Resolve call
// re-walks the page DOM as it stands at call time; nothing is cached between
// calls, so page mutations between calls are picked up naturally.
//
// A Resolver is not safe for concurrent use: it shares one browser tab.
type Resolver struct {
	page *Page
	opts []pinpoint.Option
}

// NewResolver creates a Resolver over an open page. The options are passed
// through to every Resolve call.
func NewResolver(page *Page, opts ...pinpoint.Option) *Resolver {
	return &Resolver{page: page, opts: opts}
}

// Resolve finds the live element best matching the reference.
// Returns EINVALID for a blank reference, EUNAVAILABLE when the page is
// gone, and ENOTFOUND when no visible element is similar enough. The matched
// element can be handed to ScrollIntoView.
func (r *Resolver) Resolve(ctx context.Context, reference string) (*pinpoint.Match, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "reference text required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.page.Body()
	if err != nil {
		return nil, err
	}

	match := pinpoint.Resolve(body, reference, r.opts...)
	if match == nil {
		return nil, pinpoint.Errorf(pinpoint.ENOTFOUND, "no element matches reference %q", reference)
	}
	return match, nil
}
