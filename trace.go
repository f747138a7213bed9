package pinpoint

// Trace holds per-resolution diagnostic counters. It is filled during a
// single Resolve call and handed to the configured TraceCollector once the
// call completes; the engine keeps no counters of its own between calls.
type Trace struct {
	// Visited is the number of elements the traversal classified.
	Visited int

	// Pruned is the number of subtrees skipped by the exclusion predicate.
	Pruned int

	// Textless is the number of accepted elements with no subtree text.
	Textless int

	// Candidates is the number of elements that met the minimum score.
	Candidates int

	// Suppressed is the number of candidates dropped in favor of a
	// better-scoring descendant.
	Suppressed int

	// BestScore is the score of the returned match, or 0 on no match.
	BestScore float64
}

// TraceCollector receives the diagnostic trace of a resolution. Implementations
// must not retain the contained elements beyond the call.
type TraceCollector interface {
	Collect(trace Trace)
}

// TraceCollectorFunc adapts a function to the TraceCollector interface.
type TraceCollectorFunc func(trace Trace)

// Collect calls f(trace).
func (f TraceCollectorFunc) Collect(trace Trace) { f(trace) }
