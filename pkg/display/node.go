package display

import (
	"github.com/go-stage/stage/pkg/events"
	"github.com/go-stage/stage/pkg/graphics"
)

// UpdateFlags is a bitmask recording which invalidation categories fired
// since the last update pass.
type UpdateFlags uint8

const (
	// FlagTransform indicates position, z-index or geometry changed.
	FlagTransform UpdateFlags = 1 << iota
	// FlagColor indicates tint or alpha changed.
	FlagColor
	// FlagBlend indicates the blend mode changed.
	FlagBlend
	// FlagVisible indicates visibility changed.
	FlagVisible
)

// FlagAll marks every category invalidated. Structural changes always use it.
const FlagAll = FlagTransform | FlagColor | FlagBlend | FlagVisible

// LayerGroup is a flat render-order index a node may belong to. It is
// externally owned; the tree only mirrors membership changes into it.
// See the layers package for the standard implementation.
type LayerGroup interface {
	AddChild(*Node)
	RemoveChild(*Node)
}

// ChildEvent describes a structural change as observed from the parent side.
type ChildEvent struct {
	Child  *Node
	Parent *Node
	// Index is the insertion index for childAdded events. For childRemoved
	// events fired by RemoveChild it is the child's former tree index; for
	// events fired by RemoveChildren it is the child's position within the
	// removal batch.
	Index int
}

// Node is a participant in the scene tree.
type Node struct {
	label string

	// parent is a non-owning back-reference; node lifetime is governed
	// entirely outside the tree.
	parent   *Node
	children []*Node

	didChange     bool
	didViewUpdate bool
	updateFlags   UpdateFlags

	sortableChildren bool
	sortDirty        bool

	zIndex  int
	tint    graphics.Color
	visible bool
	alpha   float64

	layerGroup LayerGroup

	childAdded   events.Emitter[ChildEvent]
	childRemoved events.Emitter[ChildEvent]
	added        events.Emitter[*Node]
	removed      events.Emitter[*Node]
}

// New creates a detached node with the given label.
func New(label string) *Node {
	return &Node{
		label:   label,
		tint:    graphics.White,
		visible: true,
		alpha:   1,
	}
}

// Label returns the user-facing name of the node.
func (n *Node) Label() string {
	return n.label
}

// SetLabel sets the user-facing name of the node.
func (n *Node) SetLabel(label string) {
	n.label = label
}

// Parent returns the node currently owning this node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Children returns a copy of the child sequence in paint order. The copy is
// safe to hold across structural mutation.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// VisitChildren calls visitor for each child in paint order until it
// returns false. The tree must not be mutated during the visit.
func (n *Node) VisitChildren(visitor func(*Node) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

// Walk calls f for every descendant of n, breadth-first, until f returns
// false. Ancestors are visited before their descendants. The tree must not
// be mutated during the walk.
func (n *Node) Walk(f func(*Node) bool) {
	queue := make([]*Node, 0, len(n.children))
	queue = append(queue, n.children...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if !f(node) {
			return
		}
		queue = append(queue, node.children...)
	}
}

// DidChange reports whether the node changed since the last update pass.
func (n *Node) DidChange() bool {
	return n.didChange
}

// DidViewUpdate reports whether the downstream view consumed the latest
// change.
func (n *Node) DidViewUpdate() bool {
	return n.didViewUpdate
}

// UpdateFlags returns the invalidation categories fired since the last
// update pass.
func (n *Node) UpdateFlags() UpdateFlags {
	return n.updateFlags
}

// ClearDirty is called by the update pass after it has consumed the node's
// pending changes.
func (n *Node) ClearDirty() {
	n.didChange = false
	n.didViewUpdate = true
	n.updateFlags = 0
}

// invalidate records a property change for the update pass.
func (n *Node) invalidate(flags UpdateFlags) {
	n.didChange = true
	n.updateFlags |= flags
}

// SortableChildren reports whether the node opted into z-index ordering.
func (n *Node) SortableChildren() bool {
	return n.sortableChildren
}

// SetSortableChildren opts the node in or out of z-index child ordering.
// Opting in marks the current order as stale.
func (n *Node) SetSortableChildren(sortable bool) {
	if n.sortableChildren == sortable {
		return
	}
	n.sortableChildren = sortable
	if sortable && len(n.children) > 0 {
		n.sortDirty = true
	}
}

// SortDirty reports whether the child order may be stale with respect to
// z-index.
func (n *Node) SortDirty() bool {
	return n.sortDirty
}

// ZIndex returns the node's z-index.
func (n *Node) ZIndex() int {
	return n.zIndex
}

// SetZIndex sets the node's z-index and marks the parent's order stale when
// the parent sorts its children.
func (n *Node) SetZIndex(z int) {
	if n.zIndex == z {
		return
	}
	n.zIndex = z
	n.invalidate(FlagTransform)
	if n.parent != nil && n.parent.sortableChildren {
		n.parent.sortDirty = true
	}
}

// Tint returns the node's tint color.
func (n *Node) Tint() graphics.Color {
	return n.tint
}

// SetTint sets the node's tint color.
func (n *Node) SetTint(c graphics.Color) {
	if n.tint == c {
		return
	}
	n.tint = c
	n.invalidate(FlagColor)
}

// Visible reports whether the node is rendered.
func (n *Node) Visible() bool {
	return n.visible
}

// SetVisible toggles whether the node is rendered.
func (n *Node) SetVisible(visible bool) {
	if n.visible == visible {
		return
	}
	n.visible = visible
	n.invalidate(FlagVisible)
}

// Alpha returns the node's opacity (0-1).
func (n *Node) Alpha() float64 {
	return n.alpha
}

// SetAlpha sets the node's opacity (0-1).
func (n *Node) SetAlpha(alpha float64) {
	if n.alpha == alpha {
		return
	}
	n.alpha = alpha
	n.invalidate(FlagColor)
}

// LayerGroup returns the flat render-order index the node belongs to, or
// nil.
func (n *Node) LayerGroup() LayerGroup {
	return n.layerGroup
}

// SetLayerGroup records the layer group the node belongs to. It is intended
// for LayerGroup implementations; it does not add the node to the group.
func (n *Node) SetLayerGroup(g LayerGroup) {
	n.layerGroup = g
}

// OnChildAdded subscribes to insertions into this node's child sequence.
// The event fires after the insertion is fully committed.
func (n *Node) OnChildAdded(fn func(ChildEvent)) *events.Subscription[ChildEvent] {
	return n.childAdded.Subscribe(fn)
}

// OnChildRemoved subscribes to removals from this node's child sequence.
// The event fires after the removal is fully committed.
func (n *Node) OnChildRemoved(fn func(ChildEvent)) *events.Subscription[ChildEvent] {
	return n.childRemoved.Subscribe(fn)
}

// OnAdded subscribes to this node being inserted under a parent. The
// listener receives the new parent.
func (n *Node) OnAdded(fn func(*Node)) *events.Subscription[*Node] {
	return n.added.Subscribe(fn)
}

// OnRemoved subscribes to this node being removed from its parent. The
// listener receives the former parent.
func (n *Node) OnRemoved(fn func(*Node)) *events.Subscription[*Node] {
	return n.removed.Subscribe(fn)
}
