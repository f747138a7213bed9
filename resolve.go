package pinpoint

import (
	"sort"
	"strings"
)

// Tunable resolution constants. The defaults mirror the values the scoring
// heuristic was calibrated with; they are options rather than hard-coded so
// they can be re-tuned without touching the algorithm's structure.
const (
	// DefaultMinScore is the minimum similarity for an element to become a
	// candidate at all.
	DefaultMinScore = 0.3

	// DefaultTieEpsilon is the band within which two scores are considered
	// equal during ranking, so negligible differences don't reorder.
	DefaultTieEpsilon = 0.01

	// DefaultSuppressRatio is the fraction of an ancestor's score a
	// descendant must reach for the ancestor to be suppressed in its favor.
	DefaultSuppressRatio = 0.9
)

// Options configure a Resolve call.
type Options struct {
	MinScore      float64
	TieEpsilon    float64
	SuppressRatio float64
	Collector     TraceCollector
}

// Option configures Options.
type Option func(*Options)

// WithMinScore overrides the minimum candidate score.
func WithMinScore(v float64) Option {
	return func(o *Options) { o.MinScore = v }
}

// WithTieEpsilon overrides the score band treated as a tie during ranking.
func WithTieEpsilon(v float64) Option {
	return func(o *Options) { o.TieEpsilon = v }
}

// WithSuppressRatio overrides the ancestor suppression threshold.
func WithSuppressRatio(v float64) Option {
	return func(o *Options) { o.SuppressRatio = v }
}

// WithCollector installs a diagnostic trace collector. The collector is
// invoked exactly once per Resolve call, after the result is determined.
func WithCollector(c TraceCollector) Option {
	return func(o *Options) { o.Collector = c }
}

func defaultOptions() Options {
	return Options{
		MinScore:      DefaultMinScore,
		TieEpsilon:    DefaultTieEpsilon,
		SuppressRatio: DefaultSuppressRatio,
	}
}

// Resolve finds the visible element under body whose text best matches the
// reference. It returns nil when the reference is blank, body is nil, or no
// element scores at or above the minimum.
//
// Resolve is total and read-only: it never panics, never returns an error,
// and never mutates the tree. Each call re-derives everything from the tree
// as it stands at call time; nothing is cached between calls.
func Resolve(body Element, reference string, opts ...Option) *Match {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ref := strings.TrimSpace(reference)
	if ref == "" || body == nil {
		return nil
	}

	var trace Trace
	candidates := collect(body, ref, o, &trace)
	match := pick(candidates, o, &trace)

	if match != nil {
		trace.BestScore = match.Score
	}
	if o.Collector != nil {
		o.Collector.Collect(trace)
	}
	return match
}

// collect walks the tree in document order, pruning excluded subtrees and
// scoring every text-bearing element against the reference.
func collect(el Element, ref string, o Options, trace *Trace) []Candidate {
	if Classify(el) == SkipSubtree {
		trace.Pruned++
		return nil
	}
	trace.Visited++

	var candidates []Candidate
	if full := el.Text(); full == "" {
		// Most nodes carry no text at all; skipping them here is the main
		// cost reduction of the whole pipeline.
		trace.Textless++
	} else {
		fullScore := Similarity(ref, full)
		var directScore float64
		if direct := el.OwnText(); direct != "" {
			directScore = Similarity(ref, direct)
		}

		score := fullScore
		if directScore > score {
			score = directScore
		}
		if score >= o.MinScore {
			trace.Candidates++
			candidates = append(candidates, Candidate{
				Element:         el,
				Score:           score,
				DirectTextScore: directScore,
				HasDirectText:   directScore >= o.MinScore,
				ChildCount:      len(el.Children()),
			})
		}
	}

	for _, child := range el.Children() {
		candidates = append(candidates, collect(child, ref, o, trace)...)
	}
	return candidates
}

// pick ranks the candidates, suppresses ancestors whose descendants match
// about as well, and returns the best survivor.
func pick(candidates []Candidate, o Options, trace *Trace) *Match {
	if len(candidates) == 0 {
		return nil
	}

	rank(candidates, o.TieEpsilon)
	kept := suppress(candidates, o.SuppressRatio)
	trace.Suppressed = len(candidates) - len(kept)

	best := candidates[0]
	if len(kept) > 0 {
		best = kept[0]
	}
	// When suppression removed everything (it cannot, if at least one
	// candidate exists, but the fallback is cheap) the best-ranked
	// candidate still wins over reporting no match.
	return &Match{Element: best.Element, Score: best.Score}
}

// rank sorts candidates in place: elements whose own text matches come first,
// then by descending score treating scores within epsilon as tied, then by
// child count so the most leaf-like element wins.
func rank(candidates []Candidate, epsilon float64) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.HasDirectText != b.HasDirectText {
			return a.HasDirectText
		}
		if diff := a.Score - b.Score; diff > epsilon {
			return true
		} else if diff < -epsilon {
			return false
		}
		return a.ChildCount < b.ChildCount
	})
}

// suppress drops any candidate that structurally contains another candidate
// scoring at least ratio of its own score: the descendant is an
// equal-or-better, more specific match. Order is preserved.
func suppress(candidates []Candidate, ratio float64) []Candidate {
	kept := make([]Candidate, 0, len(candidates))
	for i, a := range candidates {
		dominated := false
		for j, b := range candidates {
			if i == j {
				continue
			}
			// Fresh structural query on every check: the page can mutate
			// between calls, so cached ancestry is not trusted.
			if a.Element.Contains(b.Element) && b.Score >= ratio*a.Score {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, a)
		}
	}
	return kept
}
