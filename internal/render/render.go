package render

import (
	"errors"
	"fmt"
	"reflect"
)

type Position int

const (
	BeforeEnd Position = iota
	AfterBegin
)

func (p Position) String() string {
	switch p {
	case AfterBegin:
		return "afterbegin"
	case BeforeEnd:
		return "beforeend"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

var ErrNotMounted = errors.New("render: component is not mounted")

// Renderer mounts and unmounts components.
type Renderer interface {
	Render(parent, child Component, pos Position)
	Replace(newChild, oldChild Component) error
	Remove(c Component)
}

// Tree is the in-memory Renderer backing the terminal page.
type Tree struct{}

var _ Renderer = Tree{}

func (Tree) Render(parent, child Component, pos Position) {
	parent.Element().insert(child.Element(), pos)
}

// Replace swaps oldChild for newChild in place.
func (Tree) Replace(newChild, oldChild Component) error {
	if isNil(newChild) || isNil(oldChild) {
		return ErrNotMounted
	}
	oldEl := oldChild.Element()
	parent := oldEl.parent
	if parent == nil {
		return ErrNotMounted
	}
	newEl := newChild.Element()
	newEl.detach()
	for i, ch := range parent.children {
		if ch == oldEl {
			parent.children[i] = newEl
			break
		}
	}
	newEl.parent = parent
	oldEl.parent = nil
	return nil
}

// Remove unmounts c and drops its element. Removing nil is a no-op.
func (Tree) Remove(c Component) {
	if isNil(c) {
		return
	}
	c.Element().detach()
	c.RemoveElement()
}

func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
