// Package rendertest provides a recording Renderer for presenter tests.
package rendertest

import (
	"taskboard-cli/internal/render"
)

type OpKind string

const (
	OpRender  OpKind = "render"
	OpReplace OpKind = "replace"
	OpRemove  OpKind = "remove"
)

type Op struct {
	Kind   OpKind
	Parent render.Component
	Child  render.Component
	Old    render.Component
	Pos    render.Position
}

// Recorder records every call and applies it to a real render.Tree so tests can also
// inspect what ended up mounted.
type Recorder struct {
	tree render.Tree
	Ops  []Op
}

var _ render.Renderer = (*Recorder)(nil)

func New() *Recorder { return &Recorder{} }

func (r *Recorder) Render(parent, child render.Component, pos render.Position) {
	r.Ops = append(r.Ops, Op{Kind: OpRender, Parent: parent, Child: child, Pos: pos})
	r.tree.Render(parent, child, pos)
}

func (r *Recorder) Replace(newChild, oldChild render.Component) error {
	r.Ops = append(r.Ops, Op{Kind: OpReplace, Child: newChild, Old: oldChild})
	return r.tree.Replace(newChild, oldChild)
}

func (r *Recorder) Remove(c render.Component) {
	r.Ops = append(r.Ops, Op{Kind: OpRemove, Child: c})
	r.tree.Remove(c)
}

// Count returns how many recorded ops have kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() { r.Ops = nil }
