package pinpoint

// Element is a read-only view of a single element in an externally-owned
// document tree. The resolution engine is written entirely against this
// interface so it works the same over a live browser page (rod/), a parsed
// HTML string (goquery/), or a fake tree in tests (mock/).
//
// Implementations must never mutate the underlying document. The document is
// owned by the host page and may be mutated concurrently by other scripts;
// methods report the state of the tree at the instant they are called.
type Element interface {
	// TagName returns the lowercase local name of the element (e.g. "div").
	TagName() string

	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// Parent returns the parent element, or nil at the top of the tree.
	// When the element is the direct child of a shadow root, Parent continues
	// the ancestry at the shadow host element rather than stopping.
	Parent() Element

	// Children returns the immediate child elements in document order.
	// Text nodes are not included.
	Children() []Element

	// Text returns the trimmed text content of the element's entire subtree,
	// with runs of whitespace collapsed to single spaces so markup
	// pretty-printing does not defeat substring comparisons.
	Text() string

	// OwnText returns the text owned directly by this element: its immediate
	// text-node children, each individually trimmed, blank ones dropped,
	// space-joined, and the result trimmed. Whitespace runs are collapsed the
	// same way as in Text. Descendant elements' text is excluded.
	OwnText() string

	// Visible reports whether the element is visible per computed style
	// (display, visibility, opacity). The error is non-nil when style
	// computation is unavailable or fails; callers are expected to treat
	// that case as visible.
	Visible() (bool, error)

	// Contains reports whether other is a descendant of this element.
	// Implementations must answer with a fresh structural query rather than
	// cached ancestry, since the tree can change under the engine.
	Contains(other Element) bool
}
