package mock

import (
	"strings"

	"github.com/fwojciec/pinpoint"
)

var _ pinpoint.Element = (*Element)(nil)

// Element is a fake pinpoint.Element backed by plain fields, for building
// small document trees in tests without parsing HTML. Unlike the function-
// field mocks in this package, a literal tree reads better than a pile of
// closures when the test subject walks structure.
type Element struct {
	// Tag is the lowercase tag name.
	Tag string

	// Attrs holds the element's attributes. A key present with an empty
	// value models a boolean attribute such as "hidden".
	Attrs map[string]string

	// Own is the element's direct text.
	Own string

	// Kids are the immediate child elements in document order.
	Kids []*Element

	// Invisible makes Visible report false.
	Invisible bool

	// VisibleErr simulates a failing style computation.
	VisibleErr error

	parent *Element
}

// Wire sets parent pointers throughout the tree rooted at root and returns
// root. Call it once after constructing a literal tree.
func Wire(root *Element) *Element {
	for _, kid := range root.Kids {
		kid.parent = root
		Wire(kid)
	}
	return root
}

func (e *Element) TagName() string { return e.Tag }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *Element) Parent() pinpoint.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) Children() []pinpoint.Element {
	kids := make([]pinpoint.Element, len(e.Kids))
	for i, kid := range e.Kids {
		kids[i] = kid
	}
	return kids
}

func (e *Element) Text() string {
	var parts []string
	if own := e.OwnText(); own != "" {
		parts = append(parts, own)
	}
	for _, kid := range e.Kids {
		if t := kid.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func (e *Element) OwnText() string {
	return strings.Join(strings.Fields(e.Own), " ")
}

func (e *Element) Visible() (bool, error) {
	if e.VisibleErr != nil {
		return false, e.VisibleErr
	}
	return !e.Invisible, nil
}

func (e *Element) Contains(other pinpoint.Element) bool {
	o, ok := other.(*Element)
	if !ok {
		return false
	}
	for _, kid := range e.Kids {
		if kid == o || kid.Contains(o) {
			return true
		}
	}
	return false
}
