package goquery

import (
	"strings"

	"github.com/fwojciec/pinpoint"
	"golang.org/x/net/html"
)

var _ pinpoint.Element = (*element)(nil)

// element adapts an html.Node to the pinpoint element model. The node tree
// is owned by the Document; the adapter never mutates it.
type element struct {
	node *html.Node
}

func (e *element) TagName() string {
	return strings.ToLower(e.node.Data)
}

func (e *element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *element) Parent() pinpoint.Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &element{node: p}
		}
	}
	return nil
}

func (e *element) Children() []pinpoint.Element {
	var kids []pinpoint.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			kids = append(kids, &element{node: c})
		}
	}
	return kids
}

func (e *element) Text() string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, strings.Fields(n.Data)...)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.Join(parts, " ")
}

func (e *element) OwnText() string {
	var parts []string
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			parts = append(parts, strings.Fields(c.Data)...)
		}
	}
	return strings.Join(parts, " ")
}

// Visible approximates visibility from the inline style attribute: a static
// document has no computed style, so stylesheet-driven invisibility is not
// detected here. The error return stays nil — failure simulation belongs to
// live environments.
func (e *element) Visible() (bool, error) {
	style, ok := e.Attr("style")
	if !ok {
		return true, nil
	}
	for _, decl := range strings.Split(style, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.ToLower(strings.TrimSpace(value))
		switch {
		case name == "display" && value == "none":
			return false, nil
		case name == "visibility" && value == "hidden":
			return false, nil
		case name == "opacity" && value == "0":
			return false, nil
		}
	}
	return true, nil
}

func (e *element) Contains(other pinpoint.Element) bool {
	o, ok := other.(*element)
	if !ok {
		return false
	}
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c == o.node || walk(c) {
				return true
			}
		}
		return false
	}
	return walk(e.node)
}
