package pinpoint

// MarkerAttr is the reserved attribute that marks an element as part of the
// tool's own injected UI. Marked elements and their subtrees are never match
// targets.
const MarkerAttr = "data-pinpoint-ui"

// HostRootIDs are the ids of the containers the tool injects into host pages.
// Any element living under one of these roots is treated as tool-owned.
var HostRootIDs = []string{
	"pinpoint-root",
	"pinpoint-panel",
	"pinpoint-popover",
}

// nonContentTags are tags that never carry user-readable page content.
// Their subtrees are pruned from traversal entirely.
var nonContentTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"svg":      true,
	"canvas":   true,
	"video":    true,
	"audio":    true,
	"map":      true,
	"template": true,
	"head":     true,
	"meta":     true,
	"link":     true,
}

// Verdict is the outcome of classifying an element for traversal.
type Verdict int

// Verdict values.
const (
	// Accept means the element is eligible and its subtree should be walked.
	Accept Verdict = iota

	// SkipSubtree means the element and everything below it must be ignored.
	SkipSubtree
)

// Classify decides whether an element may participate in resolution.
// It rejects non-content tags, anything belonging to the tool's own injected
// UI, and elements that are not visible. Classification is pure: it never
// mutates the tree and never returns an error — a failed visibility
// computation counts as visible.
func Classify(el Element) Verdict {
	if el == nil {
		return SkipSubtree
	}
	if nonContentTags[el.TagName()] {
		return SkipSubtree
	}
	if ownedByTool(el) {
		return SkipSubtree
	}
	if hidden(el) {
		return SkipSubtree
	}
	return Accept
}

// ownedByTool reports whether the element is part of the injected UI, either
// by carrying the marker attribute itself or by having an ancestor whose id
// is one of the known host roots. The ancestry walk relies on Element.Parent
// hopping shadow boundaries, so UI mounted inside a shadow root is still
// recognized.
func ownedByTool(el Element) bool {
	if _, ok := el.Attr(MarkerAttr); ok {
		return true
	}
	for cur := el; cur != nil; cur = cur.Parent() {
		if _, ok := cur.Attr(MarkerAttr); ok {
			return true
		}
		if id, ok := cur.Attr("id"); ok {
			for _, root := range HostRootIDs {
				if id == root {
					return true
				}
			}
		}
	}
	return false
}

// hidden reports whether the element is not visible to the user.
func hidden(el Element) bool {
	if _, ok := el.Attr("hidden"); ok {
		return true
	}
	if v, ok := el.Attr("aria-hidden"); ok && v == "true" {
		return true
	}
	visible, err := el.Visible()
	if err != nil {
		// Style computation failed; assume visible rather than dropping
		// a potentially valid match.
		return false
	}
	return !visible
}
