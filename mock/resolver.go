package mock

import (
	"context"

	"github.com/fwojciec/pinpoint"
)

var _ pinpoint.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of pinpoint.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, reference string) (*pinpoint.Match, error)
}

func (r *Resolver) Resolve(ctx context.Context, reference string) (*pinpoint.Match, error) {
	return r.ResolveFn(ctx, reference)
}

var _ pinpoint.ResolverFactory = (*ResolverFactory)(nil)

// ResolverFactory is a mock implementation of pinpoint.ResolverFactory.
type ResolverFactory struct {
	NewResolverFn func(html string) (pinpoint.Resolver, error)
}

func (f *ResolverFactory) NewResolver(html string) (pinpoint.Resolver, error) {
	return f.NewResolverFn(html)
}
