// Package goquery adapts parsed HTML into the pinpoint element model.
// It backs the "headless/test DOM" environment: resolving references against
// an HTML string (a stored snapshot, a test fixture) without a browser.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pinpoint"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document whose elements can be resolved against.
type Document struct {
	doc *goquery.Document
}

// Parse parses an HTML string into a Document.
func Parse(rawHTML string) (*Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Body returns the document body as a pinpoint.Element, or nil when the
// document has no body.
func (d *Document) Body() pinpoint.Element {
	sel := d.doc.Find("body")
	if sel.Length() == 0 {
		return nil
	}
	return &element{node: sel.Nodes[0]}
}

// Title returns the document title, trimmed.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

var _ pinpoint.Resolver = (*Resolver)(nil)

// Resolver resolves references against a single parsed document. The parsed
// tree is immutable, so a Resolver is safe for concurrent use.
type Resolver struct {
	doc  *Document
	opts []pinpoint.Option
}

// NewResolver creates a Resolver over a parsed document. The options are
// passed through to every Resolve call.
func NewResolver(doc *Document, opts ...pinpoint.Option) *Resolver {
	return &Resolver{doc: doc, opts: opts}
}

// Resolve finds the element best matching the reference.
// Returns EINVALID for a blank reference and ENOTFOUND when no visible
// element is similar enough.
func (r *Resolver) Resolve(_ context.Context, reference string) (*pinpoint.Match, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "reference text required")
	}
	match := pinpoint.Resolve(r.doc.Body(), reference, r.opts...)
	if match == nil {
		return nil, pinpoint.Errorf(pinpoint.ENOTFOUND, "no element matches reference %q", reference)
	}
	return match, nil
}

var _ pinpoint.ResolverFactory = (*ResolverFactory)(nil)

// ResolverFactory builds Resolvers from raw HTML. The options are applied to
// every Resolver it creates.
type ResolverFactory struct {
	opts []pinpoint.Option
}

// NewResolverFactory creates a ResolverFactory.
func NewResolverFactory(opts ...pinpoint.Option) *ResolverFactory {
	return &ResolverFactory{opts: opts}
}

// NewResolver parses the HTML and returns a Resolver over its body.
func (f *ResolverFactory) NewResolver(rawHTML string) (pinpoint.Resolver, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	if doc.Body() == nil {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "document has no body")
	}
	return NewResolver(doc, f.opts...), nil
}

// OuterHTML renders the subtree of a matched element back to HTML. It returns
// an error when the element did not come from this adapter.
func OuterHTML(el pinpoint.Element) (string, error) {
	e, ok := el.(*element)
	if !ok {
		return "", pinpoint.Errorf(pinpoint.EINVALID, "element does not belong to a parsed document")
	}
	var sb strings.Builder
	if err := html.Render(&sb, e.node); err != nil {
		return "", pinpoint.Errorf(pinpoint.EINTERNAL, "failed to render element: %v", err)
	}
	return sb.String(), nil
}
