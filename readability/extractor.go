package readability

import (
	"strings"

	"github.com/fwojciec/pinpoint"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pinpoint.Extractor at compile time.
var _ pinpoint.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// It is the fallback for pages trafilatura handles poorly.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*pinpoint.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pinpoint.ExtractResult{
		Title:       article.Title,
		ContentText: strings.TrimSpace(article.TextContent),
	}, nil
}
