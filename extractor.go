package pinpoint

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentText is the main content as plain text, with boilerplate
	// (nav, footer, sidebar, ads) removed. It feeds the summarization
	// prompt; resolution itself always runs over the full page body so
	// boilerplate removal cannot bias the match.
	ContentText string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	Extract(html string) (*ExtractResult, error)
}
