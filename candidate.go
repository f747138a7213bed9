package pinpoint

// Candidate is an element provisionally judged similar enough to the
// reference to be considered for the final match. Candidates exist only for
// the duration of a single Resolve call; no identity persists between calls.
type Candidate struct {
	// Element is a reference to (not ownership of) the document node.
	Element Element

	// Score is the best of the full-subtree-text score and the direct-text
	// score, in [0, 1].
	Score float64

	// DirectTextScore is the score of the element's own text alone.
	DirectTextScore float64

	// HasDirectText is true when the direct-text score alone meets the
	// minimum threshold — the element itself carries the matching text
	// rather than merely containing it somewhere below.
	HasDirectText bool

	// ChildCount is the number of immediate child elements, used as a
	// proxy for leafness when breaking ties.
	ChildCount int
}

// Match is the outcome of a successful resolution: a handle to the
// best-matching element together with its similarity score. Consumers use
// the element purely to scroll it into view or highlight it.
type Match struct {
	Element Element
	Score   float64
}
