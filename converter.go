package pinpoint

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Used to render a matched element's markup as a readable excerpt.
	Convert(html string) (string, error)
}
