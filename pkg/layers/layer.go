// Package layers provides flat render-order indexes for scene-tree nodes.
//
// A Layer mirrors tree membership into a flat sequence consumed by the
// renderer. The tree keeps layers synchronized on structural changes: a
// node inserted under a parent that carries a layer group is recruited into
// it, and removal detaches the node from whichever layer it belongs to.
package layers

import (
	"cmp"
	"slices"

	"github.com/go-stage/stage/pkg/display"
)

// Layer is a named flat render-order index. It implements
// display.LayerGroup. A node belongs to at most one layer at a time.
type Layer struct {
	name      string
	children  []*display.Node
	sortable  bool
	sortDirty bool
}

// New creates an empty layer with the given name.
func New(name string) *Layer {
	return &Layer{name: name}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// AddChild appends n to the layer's flat order. A node already belonging to
// another layer is detached from it first; re-adding a member is a no-op.
func (l *Layer) AddChild(n *display.Node) {
	if g := n.LayerGroup(); g != nil {
		if existing, ok := g.(*Layer); ok && existing == l {
			return
		}
		g.RemoveChild(n)
	}
	l.children = append(l.children, n)
	n.SetLayerGroup(l)
	if l.sortable {
		l.sortDirty = true
	}
}

// RemoveChild splices n out of the flat order and clears its membership.
// Removing a non-member is a no-op.
func (l *Layer) RemoveChild(n *display.Node) {
	if i := slices.Index(l.children, n); i >= 0 {
		l.children = slices.Delete(l.children, i, i+1)
	}
	if existing, ok := n.LayerGroup().(*Layer); ok && existing == l {
		n.SetLayerGroup(nil)
	}
}

// Len returns the number of members.
func (l *Layer) Len() int {
	return len(l.children)
}

// Children returns a copy of the flat render order.
func (l *Layer) Children() []*display.Node {
	out := make([]*display.Node, len(l.children))
	copy(out, l.children)
	return out
}

// SetSortable opts the layer in or out of z-index ordering.
func (l *Layer) SetSortable(sortable bool) {
	if l.sortable == sortable {
		return
	}
	l.sortable = sortable
	if sortable && len(l.children) > 0 {
		l.sortDirty = true
	}
}

// SortDirty reports whether the flat order may be stale with respect to
// z-index.
func (l *Layer) SortDirty() bool {
	return l.sortDirty
}

// SortChildren reorders the flat sequence by ascending z-index. Stable, so
// members with equal z-index keep their arrival order.
func (l *Layer) SortChildren() {
	if !l.sortDirty {
		return
	}
	l.sortDirty = false
	if len(l.children) < 2 {
		return
	}
	slices.SortStableFunc(l.children, func(a, b *display.Node) int {
		return cmp.Compare(a.ZIndex(), b.ZIndex())
	})
}
