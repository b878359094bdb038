package warren

import (
	"testing"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewSpriteDefaults(t *testing.T) {
	n := NewSprite("spr", WhitePixel)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.Image != WhitePixel {
		t.Errorf("Image not set")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible || !n.Renderable {
		t.Error("node should start visible and renderable")
	}
	if n.Interactable {
		t.Error("node should not start interactable")
	}
}

// --- Tree operations ---

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")

	a.AddChild(child)
	if child.Parent != a || a.NumChildren() != 1 {
		t.Fatal("child not attached to a")
	}

	b.AddChild(child)
	if child.Parent != b {
		t.Error("child not reparented to b")
	}
	if a.NumChildren() != 0 {
		t.Errorf("a still has %d children", a.NumChildren())
	}
}

func TestAddChildPanicsOnCycle(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("expected panic adding ancestor as child")
		}
	}()
	child.AddChild(parent)
}

func TestAddChildPanicsOnNil(t *testing.T) {
	parent := NewContainer("parent")
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding nil child")
		}
	}()
	parent.AddChild(nil)
}

func TestRemoveChildrenDoesNotDispose(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if a.IsDisposed() || b.IsDisposed() {
		t.Error("removed children must stay usable")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("removed children should have no parent")
	}
}

func TestDisposeIsIdempotentAndRecursive(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.Dispose()
	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("dispose must cover the whole subtree")
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	child.RemoveFromParent()
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child not detached")
	}

	// detaching again is a no-op
	child.RemoveFromParent()
}

// --- ZIndex ordering ---

func TestDrawOrderStableByZIndex(t *testing.T) {
	parent := NewContainer("parent")
	low := NewContainer("low")
	mid1 := NewContainer("mid1")
	mid2 := NewContainer("mid2")
	high := NewContainer("high")

	parent.AddChild(mid1)
	parent.AddChild(high)
	parent.AddChild(low)
	parent.AddChild(mid2)

	low.SetZIndex(-5)
	high.SetZIndex(10)
	// mid1 and mid2 share ZIndex 0; insertion order must hold

	order := parent.drawOrder()
	want := []*Node{low, mid1, mid2, high}
	for i, n := range want {
		if order[i] != n {
			t.Fatalf("order[%d] = %q, want %q", i, order[i].Name, n.Name)
		}
	}
}
