// Package annotate orchestrates the summarize-and-cite pipeline.
// It fetches a page, snapshots it, extracts its main content, generates a
// cited summary, and resolves every cited reference back to a page element.
package annotate

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/pinpoint"
	"golang.org/x/sync/errgroup"
)

// Annotator runs the pipeline for a single URL.
type Annotator struct {
	Fetcher     pinpoint.Fetcher
	Extractor   pinpoint.Extractor
	Fallback    pinpoint.Extractor // optional, tried when Extractor fails or finds no content
	Summarizer  pinpoint.Summarizer
	Resolvers   pinpoint.ResolverFactory
	Snapshots   pinpoint.SnapshotService // optional
	RateLimiter pinpoint.DomainLimiter   // optional
	Concurrency int
	RetryDelays []time.Duration // nil means DefaultRetryDelays
}

// AnnotatedReference pairs a cited passage with its resolution outcome.
// Match is nil when no sufficiently similar visible element exists; that is
// an expected outcome for model-generated citations, not a failure.
type AnnotatedReference struct {
	Text  string
	Match *pinpoint.Match
}

// AnnotatedSummary is the pipeline's result for one page.
type AnnotatedSummary struct {
	URL        string
	Title      string
	Summary    string
	References []AnnotatedReference
}

// Resolved reports how many references resolved to an element.
func (s *AnnotatedSummary) Resolved() int {
	var n int
	for _, ref := range s.References {
		if ref.Match != nil {
			n++
		}
	}
	return n
}

// Annotate fetches the page, summarizes it, and resolves the summary's
// references against the page body. References resolve concurrently; their
// order in the result matches the order the summary cited them.
func (a *Annotator) Annotate(ctx context.Context, pageURL string) (*AnnotatedSummary, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "invalid URL %q: %v", pageURL, err)
	}

	if a.RateLimiter != nil {
		if err := a.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			return nil, err
		}
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := fetchWithRetry(ctx, a.Fetcher, pageURL, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	extracted := a.extract(html)

	if a.Snapshots != nil {
		snapshot := &pinpoint.Snapshot{
			URL:   pageURL,
			Title: extracted.Title,
			HTML:  html,
		}
		if err := a.Snapshots.CreateSnapshot(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", pageURL, err)
		}
	}

	summary, err := a.Summarizer.Summarize(ctx, extracted.Title, extracted.ContentText)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", pageURL, err)
	}

	references, err := a.resolveAll(ctx, html, summary.References)
	if err != nil {
		return nil, err
	}

	return &AnnotatedSummary{
		URL:        pageURL,
		Title:      extracted.Title,
		Summary:    summary.Text,
		References: references,
	}, nil
}

// extract runs the primary extractor with an optional fallback. Extraction
// failure never fails the pipeline: summarization can still run on the raw
// markup's text, and resolution uses the full body regardless.
func (a *Annotator) extract(html string) *pinpoint.ExtractResult {
	result, err := a.Extractor.Extract(html)
	if err == nil && result.ContentText != "" {
		return result
	}
	if a.Fallback != nil {
		if fallback, ferr := a.Fallback.Extract(html); ferr == nil && fallback.ContentText != "" {
			return fallback
		}
	}
	if result == nil {
		result = &pinpoint.ExtractResult{}
	}
	return result
}

// resolveAll resolves references concurrently against one shared resolver.
// A reference that cannot be resolved (ENOTFOUND, EINVALID) is recorded with
// a nil Match; any other resolver error aborts.
func (a *Annotator) resolveAll(ctx context.Context, html string, refs []string) ([]AnnotatedReference, error) {
	references := make([]AnnotatedReference, len(refs))
	for i, ref := range refs {
		references[i] = AnnotatedReference{Text: ref}
	}
	if len(refs) == 0 {
		return references, nil
	}

	resolver, err := a.Resolvers.NewResolver(html)
	if err != nil {
		return nil, fmt.Errorf("prepare resolver: %w", err)
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			match, err := resolver.Resolve(gctx, ref)
			if err != nil {
				switch pinpoint.ErrorCode(err) {
				case pinpoint.ENOTFOUND, pinpoint.EINVALID:
					return nil
				}
				return err
			}
			references[i].Match = match
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return references, nil
}
