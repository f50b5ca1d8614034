package display

import (
	"testing"

	"github.com/go-stage/stage/pkg/graphics"
)

func TestNew_Defaults(t *testing.T) {
	n := New("n")

	if n.Label() != "n" {
		t.Errorf("Label() = %q", n.Label())
	}
	if n.Parent() != nil || n.Len() != 0 {
		t.Error("expected a detached node without children")
	}
	if !n.Visible() || n.Alpha() != 1 || n.Tint() != graphics.White {
		t.Error("expected visible, opaque, untinted defaults")
	}
	if n.DidChange() || n.UpdateFlags() != 0 || n.SortDirty() {
		t.Error("expected clean flags")
	}
}

func TestClearDirty(t *testing.T) {
	parent := New("parent")
	child := New("child")
	parent.AddChild(child)

	child.ClearDirty()

	if child.DidChange() {
		t.Error("expected didChange cleared")
	}
	if !child.DidViewUpdate() {
		t.Error("expected didViewUpdate set")
	}
	if child.UpdateFlags() != 0 {
		t.Errorf("expected no update flags, got %b", child.UpdateFlags())
	}
}

func TestSetters_UpdateFlags(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Node)
		want UpdateFlags
	}{
		{"tint", func(n *Node) { n.SetTint(graphics.RGB(1, 2, 3)) }, FlagColor},
		{"alpha", func(n *Node) { n.SetAlpha(0.5) }, FlagColor},
		{"visible", func(n *Node) { n.SetVisible(false) }, FlagVisible},
		{"zIndex", func(n *Node) { n.SetZIndex(7) }, FlagTransform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New("n")
			tt.set(n)
			if !n.DidChange() {
				t.Error("expected didChange set")
			}
			if n.UpdateFlags() != tt.want {
				t.Errorf("UpdateFlags() = %b, want %b", n.UpdateFlags(), tt.want)
			}
		})
	}
}

func TestSetters_SameValueNoOp(t *testing.T) {
	n := New("n")
	n.SetVisible(true)
	n.SetAlpha(1)
	n.SetTint(graphics.White)
	n.SetZIndex(0)
	n.SetLabel("n")

	if n.DidChange() || n.UpdateFlags() != 0 {
		t.Error("setting the current value must not invalidate")
	}
}

func TestSetZIndex_MarksParentSortDirty(t *testing.T) {
	parent, children := makeTree("a", "b")
	parent.SetSortableChildren(true)
	parent.SortChildren() // settle

	children[0].SetZIndex(5)

	if !parent.SortDirty() {
		t.Error("expected sortDirty on the sortable parent")
	}

	plain, plainChildren := makeTree("x")
	plainChildren[0].SetZIndex(5)
	if plain.SortDirty() {
		t.Error("non-sortable parent must not be marked")
	}
}

func TestSortChildren_StableByZIndex(t *testing.T) {
	parent, children := makeTree("a", "b", "c", "d")
	parent.SetSortableChildren(true)
	children[0].SetZIndex(2)
	children[1].SetZIndex(1)
	children[2].SetZIndex(2)
	children[3].SetZIndex(0)

	rec := &eventRecorder{}
	rec.watch(parent)

	parent.SortChildren()

	// d(0), b(1), then a before c: equal z keeps insertion order.
	assertOrder(t, parent, children[3], children[1], children[0], children[2])
	if parent.SortDirty() {
		t.Error("expected sortDirty cleared")
	}
	rec.expect(t) // reordering by sort emits no structural events
}

func TestSortChildren_SkipsWhenClean(t *testing.T) {
	parent, children := makeTree("a", "b")
	children[0].SetZIndex(9) // parent not sortable, so not marked dirty

	parent.SortChildren()

	assertOrder(t, parent, children[0], children[1])
}

func TestSetSortableChildren(t *testing.T) {
	parent, _ := makeTree("a")

	parent.SetSortableChildren(true)
	if !parent.SortDirty() {
		t.Error("opting in with existing children must mark the order stale")
	}

	empty := New("empty")
	empty.SetSortableChildren(true)
	if empty.SortDirty() {
		t.Error("opting in with no children must not mark the order stale")
	}
}

func TestChildren_ReturnsCopy(t *testing.T) {
	parent, children := makeTree("a", "b")

	got := parent.Children()
	got[0] = nil

	assertOrder(t, parent, children[0], children[1])
}

func TestVisitChildren(t *testing.T) {
	parent, children := makeTree("a", "b", "c")

	var visited []*Node
	parent.VisitChildren(func(n *Node) bool {
		visited = append(visited, n)
		return len(visited) < 2
	})

	if len(visited) != 2 || visited[0] != children[0] || visited[1] != children[1] {
		t.Errorf("expected visit to stop after two children, got %v", labels(visited))
	}
}

func TestWalk_BreadthFirst(t *testing.T) {
	root := New("root")
	a, b := New("a"), New("b")
	a1, a2, b1 := New("a1"), New("a2"), New("b1")
	root.AddChild(a, b)
	a.AddChild(a1, a2)
	b.AddChild(b1)

	var order []string
	root.Walk(func(n *Node) bool {
		order = append(order, n.Label())
		return true
	})

	want := []string{"a", "b", "a1", "a2", "b1"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestWalk_Stops(t *testing.T) {
	root := New("root")
	root.AddChild(New("a"), New("b"))

	count := 0
	root.Walk(func(*Node) bool {
		count++
		return false
	})

	if count != 1 {
		t.Errorf("expected walk to stop after 1 node, got %d", count)
	}
}
