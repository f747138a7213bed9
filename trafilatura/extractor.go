package trafilatura

import (
	"strings"

	"github.com/fwojciec/pinpoint"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pinpoint.Extractor at compile time.
var _ pinpoint.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// The extracted text feeds the summarization prompt only; resolution always
// runs over the full page body.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pinpoint.ExtractResult{
		Title:       result.Metadata.Title,
		ContentText: strings.TrimSpace(result.ContentText),
	}, nil
}
