// Package render is the mount/unmount capability the presenters draw through.
//
// Components own an Element lazily (see Abstract). Elements form a tree rooted at a
// Page; rendering the page walks the tree and asks every mounted view for its markup.
package render

import "strings"

// View produces a component's own markup.
type View interface {
	Template() string
}

// Container is a view that wraps the markup of its mounted children.
type Container interface {
	View
	Compose(children []string) string
}

// Component is anything the Renderer can mount.
type Component interface {
	Element() *Element
	RemoveElement()
}

type Element struct {
	view     View
	parent   *Element
	children []*Element
}

func NewElement(v View) *Element {
	return &Element{view: v}
}

func (e *Element) View() View { return e.view }

func (e *Element) Parent() *Element { return e.parent }

func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// String renders the subtree rooted at e.
func (e *Element) String() string {
	c, ok := e.view.(Container)
	if !ok {
		return e.view.Template()
	}
	parts := make([]string, 0, len(e.children))
	for _, ch := range e.children {
		if s := ch.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return c.Compose(parts)
}

// Walk visits e and its descendants in document order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, ch := range e.children {
		if !ch.Walk(fn) {
			return false
		}
	}
	return true
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for p := other; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

func (e *Element) insert(child *Element, pos Position) {
	child.detach()
	child.parent = e
	switch pos {
	case AfterBegin:
		e.children = append([]*Element{child}, e.children...)
	default:
		e.children = append(e.children, child)
	}
}

func (e *Element) detach() {
	p := e.parent
	if p == nil {
		return
	}
	for i, ch := range p.children {
		if ch == e {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Find returns every mounted view of type T under root, in document order.
func Find[T any](root *Element) []T {
	var out []T
	root.Walk(func(e *Element) bool {
		if v, ok := e.view.(T); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Abstract gives a view the lazily-created element every component needs.
// Embed it and implement Element as `return v.ElementOf(v)`.
type Abstract struct {
	el *Element
}

func (a *Abstract) ElementOf(v View) *Element {
	if a.el == nil {
		a.el = NewElement(v)
	}
	return a.el
}

// Mounted reports whether the component currently sits in a tree.
func (a *Abstract) Mounted() bool {
	return a.el != nil && a.el.parent != nil
}

func (a *Abstract) RemoveElement() {
	a.el = nil
}

// Page is the root container; children are stacked vertically.
type Page struct {
	Abstract
}

func NewPage() *Page { return &Page{} }

func (p *Page) Element() *Element { return p.ElementOf(p) }

func (p *Page) Template() string { return "" }

func (p *Page) Compose(children []string) string {
	return strings.Join(children, "\n")
}
