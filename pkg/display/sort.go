package display

import (
	"cmp"
	"slices"
)

// SortChildren reorders the child sequence by ascending z-index. The sort
// is stable, so children with equal z-index keep their insertion order.
// It runs only when the order is stale and emits no structural events.
func (n *Node) SortChildren() {
	if !n.sortDirty {
		return
	}
	n.sortDirty = false
	if len(n.children) < 2 {
		return
	}
	slices.SortStableFunc(n.children, func(a, b *Node) int {
		return cmp.Compare(a.zIndex, b.zIndex)
	})
}
