// Package pinpoint resolves short reference strings — passage citations
// produced by an LLM summarization pipeline — to the single best-matching
// visible element of an arbitrary, untrusted HTML document, so a UI can
// scroll to and highlight the cited passage.
//
// This package contains domain types, interfaces, and the dependency-free
// resolution engine following Ben Johnson's Standard Package Layout.
// Environment adapters and collaborators live in subdirectories named after
// their primary dependency (e.g., goquery/, rod/, gemini/, sqlite/).
package pinpoint
