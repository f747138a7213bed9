package rod

import (
	"strings"

	"github.com/fwojciec/pinpoint"
	"github.com/go-rod/rod"
)

var _ pinpoint.Element = (*element)(nil)

// element adapts a live *rod.Element to the pinpoint element model. Every
// method is a fresh CDP query against the page, so answers reflect the DOM
// at the instant of the call — the page can mutate underneath us and the
// engine is written to tolerate that.
//
// The element model has no error returns outside Visible, so failed queries
// degrade to empty answers; the engine then treats the element as textless
// or childless rather than aborting the traversal.
type element struct {
	el *rod.Element
}

func (e *element) TagName() string {
	obj, err := e.el.Eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return ""
	}
	return obj.Value.Str()
}

func (e *element) Attr(name string) (string, bool) {
	val, err := e.el.Attribute(name)
	if err != nil || val == nil {
		return "", false
	}
	return *val, true
}

func (e *element) Parent() pinpoint.Element {
	// parentElement, or the shadow host when the walk reaches the top of a
	// shadow tree, so tool UI mounted inside a shadow root keeps its
	// ancestry connected to the page.
	parent, err := e.el.ElementByJS(rod.Eval(`() => {
		if (this.parentElement) return this.parentElement;
		const root = this.getRootNode();
		return root instanceof ShadowRoot ? root.host : null;
	}`))
	if err != nil {
		return nil
	}
	return &element{el: parent}
}

func (e *element) Children() []pinpoint.Element {
	els, err := e.el.Elements(":scope > *")
	if err != nil {
		return nil
	}
	kids := make([]pinpoint.Element, len(els))
	for i, el := range els {
		kids[i] = &element{el: el}
	}
	return kids
}

func (e *element) Text() string {
	obj, err := e.el.Eval(`() => this.textContent || ''`)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(obj.Value.Str()), " ")
}

func (e *element) OwnText() string {
	obj, err := e.el.Eval(`() => Array.from(this.childNodes)
		.filter(n => n.nodeType === Node.TEXT_NODE)
		.map(n => n.textContent.trim())
		.filter(t => t.length > 0)
		.join(' ')`)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(obj.Value.Str()), " ")
}

func (e *element) Visible() (bool, error) {
	obj, err := e.el.Eval(`() => {
		const style = window.getComputedStyle(this);
		return style.display !== 'none' &&
			style.visibility !== 'hidden' &&
			style.opacity !== '0';
	}`)
	if err != nil {
		// Style computation failed; the engine treats this as visible.
		return false, err
	}
	return obj.Value.Bool(), nil
}

func (e *element) Contains(other pinpoint.Element) bool {
	o, ok := other.(*element)
	if !ok {
		return false
	}
	contains, err := e.el.ContainsElement(o.el)
	if err != nil {
		return false
	}
	return contains
}

// OuterHTML returns the matched element's markup as the browser currently
// renders it. It returns EINVALID when the element did not come from a live
// page.
func OuterHTML(el pinpoint.Element) (string, error) {
	e, ok := el.(*element)
	if !ok {
		return "", pinpoint.Errorf(pinpoint.EINVALID, "element does not belong to a live page")
	}
	html, err := e.el.HTML()
	if err != nil {
		return "", pinpoint.Errorf(pinpoint.EUNAVAILABLE, "reading element HTML: %v", err)
	}
	return html, nil
}

// ScrollIntoView scrolls the matched element into the viewport. It returns
// EINVALID when the element did not come from a live page.
func ScrollIntoView(el pinpoint.Element) error {
	e, ok := el.(*element)
	if !ok {
		return pinpoint.Errorf(pinpoint.EINVALID, "element does not belong to a live page")
	}
	if err := e.el.ScrollIntoView(); err != nil {
		return pinpoint.Errorf(pinpoint.EUNAVAILABLE, "scrolling element into view: %v", err)
	}
	return nil
}
