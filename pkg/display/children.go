package display

import (
	"slices"

	"github.com/go-stage/stage/pkg/errors"
)

// AddChild appends each given node to the child sequence in argument order
// and returns the first one. Nil entries are skipped.
func (n *Node) AddChild(children ...*Node) *Node {
	var first *Node
	for _, child := range children {
		if child == nil {
			continue
		}
		if first == nil {
			first = child
		}
		n.addChildAt(child, len(n.children))
	}
	return first
}

// AddChildAt inserts child into the sequence at index. index may equal
// Len(), meaning append. A child that already has a parent is silently
// spliced out of that parent's sequence first; the detach emits no
// removed-side events. child must not be an ancestor of n.
//
// When child is already at index under n, the call is a no-op.
func (n *Node) AddChildAt(child *Node, index int) (*Node, error) {
	if index < 0 || index > len(n.children) {
		return nil, errors.Bounds("display.AddChildAt", "index %d out of range [0, %d]", index, len(n.children))
	}
	if child == nil {
		return nil, errors.NotChild("display.AddChildAt", "child must not be nil")
	}
	return n.addChildAt(child, index), nil
}

// addChildAt performs the insertion after validation. The sequence, the
// back-reference and the child's flags are committed before the layer group
// is synchronized and events fire.
func (n *Node) addChildAt(child *Node, index int) *Node {
	if child.parent != nil {
		current := slices.Index(child.parent.children, child)
		if child.parent == n && current == index {
			return child
		}
		if current >= 0 {
			// Silent detach: a move between positions or parents never
			// emits removed-side events.
			child.parent.children = slices.Delete(child.parent.children, current, current+1)
		}
		child.parent = nil
	}

	if index >= len(n.children) {
		n.children = append(n.children, child)
	} else {
		n.children = slices.Insert(n.children, index, child)
	}

	child.parent = n
	child.didChange = true
	child.didViewUpdate = false
	child.updateFlags = FlagAll

	if n.layerGroup != nil {
		n.layerGroup.AddChild(child)
	}
	if n.sortableChildren {
		n.sortDirty = true
	}

	n.childAdded.Emit(ChildEvent{Child: child, Parent: n, Index: index})
	child.added.Emit(n)
	return child
}

// RemoveChild removes each given node that is currently a member of the
// child sequence and returns the first argument. Non-members (and nil
// entries) are skipped without error.
func (n *Node) RemoveChild(children ...*Node) *Node {
	var first *Node
	if len(children) > 0 {
		first = children[0]
	}
	for _, child := range children {
		if child == nil || child.parent != n {
			continue
		}
		index := slices.Index(n.children, child)
		n.children = slices.Delete(n.children, index, index+1)
		child.parent = nil
		if g := child.layerGroup; g != nil {
			g.RemoveChild(child)
		}
		n.childRemoved.Emit(ChildEvent{Child: child, Parent: n, Index: index})
		child.removed.Emit(n)
	}
	return first
}

// RemoveChildAt removes and returns the child at index.
func (n *Node) RemoveChildAt(index int) (*Node, error) {
	child, err := n.ChildAt(index)
	if err != nil {
		return nil, err
	}
	return n.RemoveChild(child), nil
}

// RemoveChildren removes every child in the half-open range
// [beginIndex, endIndex) and returns them ordered from original index
// endIndex-1 down to beginIndex.
//
// Removal is fully committed - back-references cleared, layer groups
// detached, sequence spliced - before any event fires. Each removed node
// then fires childRemoved on the parent, with the node's position within
// the returned batch, followed by removed on the node itself.
//
// Calling RemoveChildren(0, 0) on an empty sequence returns an empty batch.
// Every other non-positive range is a range error.
func (n *Node) RemoveChildren(beginIndex, endIndex int) ([]*Node, error) {
	rng := endIndex - beginIndex
	switch {
	case rng > 0 && beginIndex >= 0:
		removed := make([]*Node, 0, rng)
		high := min(endIndex, len(n.children))
		for i := high - 1; i >= beginIndex; i-- {
			child := n.children[i]
			if g := child.layerGroup; g != nil {
				g.RemoveChild(child)
			}
			removed = append(removed, child)
			child.parent = nil
		}
		if beginIndex < high {
			n.children = slices.Delete(n.children, beginIndex, high)
		}
		for i, child := range removed {
			n.childRemoved.Emit(ChildEvent{Child: child, Parent: n, Index: i})
			child.removed.Emit(n)
		}
		return removed, nil
	case rng == 0 && len(n.children) == 0:
		return []*Node{}, nil
	}
	return nil, errors.Range("display.RemoveChildren", "indices [%d, %d) outside the acceptable range", beginIndex, endIndex)
}

// RemoveChildrenFrom removes every child from beginIndex to the end of the
// sequence.
func (n *Node) RemoveChildrenFrom(beginIndex int) ([]*Node, error) {
	return n.RemoveChildren(beginIndex, len(n.children))
}

// RemoveAllChildren removes every child. Removing from an empty node
// returns an empty batch.
func (n *Node) RemoveAllChildren() []*Node {
	removed, _ := n.RemoveChildren(0, len(n.children))
	return removed
}

// ChildAt returns the child at index. It has no side effects.
func (n *Node) ChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, errors.Bounds("display.ChildAt", "index %d does not exist", index)
	}
	return n.children[index], nil
}

// IndexOf returns the current position of child in the sequence, comparing
// by identity. It has no side effects.
func (n *Node) IndexOf(child *Node) (int, error) {
	index := slices.Index(n.children, child)
	if index < 0 {
		return 0, errors.NotChild("display.IndexOf", "node %s is not a child of %s", nodeLabel(child), nodeLabel(n))
	}
	return index, nil
}

// SetChildIndex relocates child to index within the sequence.
//
// Relocation reuses the insertion path, so a same-parent move resets the
// child's dirty flags and fires the full added-side notification cycle,
// exactly as a reparenting would. SwapChildren is the cheap alternative.
func (n *Node) SetChildIndex(child *Node, index int) error {
	if index < 0 || index >= len(n.children) {
		return errors.Bounds("display.SetChildIndex", "index %d out of range [0, %d)", index, len(n.children))
	}
	if _, err := n.IndexOf(child); err != nil {
		return err
	}
	n.addChildAt(child, index)
	return nil
}

// SwapChildren exchanges the positions of two children in place. It touches
// no back-references, flags or layer groups and emits no events. Swapping a
// node with itself is a no-op.
func (n *Node) SwapChildren(a, b *Node) error {
	if a == b {
		return nil
	}
	ia, err := n.IndexOf(a)
	if err != nil {
		return err
	}
	ib, err := n.IndexOf(b)
	if err != nil {
		return err
	}
	n.children[ia], n.children[ib] = n.children[ib], n.children[ia]
	return nil
}

// RemoveFromParent detaches the node from its current parent. Detaching an
// already-detached node is a no-op.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.label == "" {
		return "<unlabeled>"
	}
	return n.label
}
