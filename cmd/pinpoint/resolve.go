package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pinpoint"
	"github.com/fwojciec/pinpoint/goquery"
	"github.com/fwojciec/pinpoint/rod"
	pinslog "github.com/fwojciec/pinpoint/slog"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	opts := []pinpoint.Option{pinpoint.WithMinScore(c.MinScore)}

	var trace pinpoint.Trace
	if c.Trace {
		opts = append(opts, pinpoint.WithCollector(pinpoint.TraceCollectorFunc(func(t pinpoint.Trace) {
			trace = t
		})))
	}

	resolver, outerHTML, cleanup, err := c.newResolver(deps, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	if deps.Logger != nil {
		resolver = pinslog.NewLoggingResolver(resolver, deps.Logger)
	}

	for _, reference := range c.References {
		fmt.Fprintf(deps.Stdout, "%q\n", reference)

		match, err := resolver.Resolve(deps.Ctx, reference)
		if err != nil {
			switch pinpoint.ErrorCode(err) {
			case pinpoint.ENOTFOUND, pinpoint.EINVALID:
				fmt.Fprintf(deps.Stdout, "  no match (%s)\n", pinpoint.ErrorMessage(err))
				if c.Trace {
					printTrace(deps, trace)
				}
				continue
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinpoint.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "  <%s> score=%.2f\n", match.Element.TagName(), match.Score)
		if c.Trace {
			printTrace(deps, trace)
		}

		if excerpt := c.excerpt(deps, outerHTML, match.Element); excerpt != "" {
			fmt.Fprintf(deps.Stdout, "  | %s\n", excerpt)
		}
	}

	return nil
}

// newResolver builds a resolver for the command's environment: the live page
// by default, the stored snapshot with --offline. It returns the matching
// outer-HTML renderer and a cleanup function.
func (c *ResolveCmd) newResolver(deps *Dependencies, opts []pinpoint.Option) (pinpoint.Resolver, func(pinpoint.Element) (string, error), func(), error) {
	if c.Offline {
		snapshot, err := deps.Snapshots.FindSnapshotByURL(deps.Ctx, c.URL)
		if err != nil {
			if pinpoint.ErrorCode(err) == pinpoint.ENOTFOUND {
				fmt.Fprintf(deps.Stderr, "Hint: Run 'pinpoint resolve' without --offline first to store a snapshot\n")
			}
			return nil, nil, nil, err
		}

		doc, err := goquery.Parse(snapshot.HTML)
		if err != nil {
			return nil, nil, nil, err
		}
		return goquery.NewResolver(doc, opts...), goquery.OuterHTML, func() {}, nil
	}

	page, err := deps.Browser.Open(deps.Ctx, c.URL)
	if err != nil {
		return nil, nil, nil, err
	}

	// Snapshot the rendered page so --offline works later. A snapshot
	// failure doesn't block resolution.
	if html, err := page.HTML(); err == nil {
		snapshot := &pinpoint.Snapshot{URL: c.URL, Title: page.Title(), HTML: html}
		if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snapshot); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to store snapshot: %s\n", pinpoint.ErrorMessage(err))
		}
	}

	cleanup := func() { _ = page.Close() }
	return rod.NewResolver(page, opts...), rod.OuterHTML, cleanup, nil
}

// excerpt renders the matched element as a one-line Markdown preview.
func (c *ResolveCmd) excerpt(deps *Dependencies, outerHTML func(pinpoint.Element) (string, error), el pinpoint.Element) string {
	html, err := outerHTML(el)
	if err != nil {
		return ""
	}
	markdown, err := deps.Converter.Convert(html)
	if err != nil {
		return ""
	}
	return truncate(strings.Join(strings.Fields(markdown), " "), 120)
}

func printTrace(deps *Dependencies, trace pinpoint.Trace) {
	fmt.Fprintf(deps.Stdout, "  visited=%d pruned=%d textless=%d candidates=%d suppressed=%d\n",
		trace.Visited, trace.Pruned, trace.Textless, trace.Candidates, trace.Suppressed)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
