package pinpoint

import "context"

// Summary is an AI-generated summary of a page together with the verbatim
// passages it cites. References are short spans of the page text; resolving
// them back to elements is the engine's job, not the summarizer's.
type Summary struct {
	// Text is the summary itself, with citation markers removed.
	Text string

	// References are the cited passages in the order they appear in the
	// summary. Untrusted model output: a reference may not occur on the
	// page at all.
	References []string
}

// Summarizer produces a cited summary of page content.
type Summarizer interface {
	// Summarize generates a summary of the given page content. The title
	// may be empty. Returns EINVALID for empty content.
	Summarize(ctx context.Context, title, content string) (*Summary, error)
}
