package pinpoint

import "context"

// Resolver resolves a reference string against some document environment.
// Implementations hide where the document comes from: a live browser page,
// a stored snapshot, or a parsed HTML string.
//
// Resolve returns ENOTFOUND when no sufficiently similar visible element
// exists, EINVALID for a blank reference, and EUNAVAILABLE when the
// underlying environment (browser, page) cannot be reached. A no-match is a
// defined outcome, not a failure of the environment: callers should degrade
// gracefully, e.g. leave the citation unclickable.
type Resolver interface {
	Resolve(ctx context.Context, reference string) (*Match, error)
}

// ResolverFactory builds a Resolver for a page's HTML. It lets callers that
// already hold the markup (an annotation pipeline, a stored snapshot) pick a
// document environment without depending on a particular parser.
type ResolverFactory interface {
	// NewResolver parses the HTML and returns a Resolver over its body.
	// Returns EINVALID if the markup has no body.
	NewResolver(html string) (Resolver, error)
}
