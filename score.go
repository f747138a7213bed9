package pinpoint

import "strings"

// Similarity computes a normalized closeness in [0, 1] between a reference
// string and a candidate text. It applies three rules in order, returning on
// the first that applies:
//
//  1. Case-insensitive, whitespace-trimmed equality scores 1.0.
//  2. Containment in either direction scores len(shorter)/len(longer), so a
//     one-word reference buried in a long paragraph scores low while near-full
//     containment scores high.
//  3. Word overlap: the fraction of reference words that match some candidate
//     word, where "match" is a case-insensitive substring test in either
//     direction. Zero reference words score 0.
//
// This is a deliberately cheap heuristic, not edit distance: resolution runs
// over every text-bearing element of a page and has to stay fast on noisy
// real-world DOMs.
func Similarity(reference, text string) float64 {
	ref := strings.ToLower(strings.TrimSpace(reference))
	cand := strings.ToLower(strings.TrimSpace(text))

	if ref == cand {
		return 1
	}

	if ref != "" && cand != "" && (strings.Contains(cand, ref) || strings.Contains(ref, cand)) {
		shorter, longer := len(ref), len(cand)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	refWords := strings.Fields(ref)
	if len(refWords) == 0 {
		return 0
	}
	candWords := strings.Fields(cand)

	matched := 0
	for _, rw := range refWords {
		for _, cw := range candWords {
			if strings.Contains(cw, rw) || strings.Contains(rw, cw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(refWords))
}
