package warren

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order. Isometric
// floor cursors use this for their diamond footprint.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using a
// cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Pointer state ---

type pointerState struct {
	down    bool
	hitNode *Node
	button  MouseButton
}

// --- Hit testing ---

// HitTest finds the topmost interactable node at the given world coordinates,
// or nil. Nodes with HitIgnore set are passed through without unregistering
// their interactivity.
func (s *Stage) HitTest(worldX, worldY float64) *Node {
	return hitTestNode(s.root, worldX, worldY)
}

// hitTestNode searches n's subtree topmost-first: children in reverse draw
// order, then n itself.
func hitTestNode(n *Node, wx, wy float64) *Node {
	if !n.Visible {
		return nil
	}
	order := n.drawOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if hit := hitTestNode(order[i], wx, wy); hit != nil {
			return hit
		}
	}
	if n.Interactable && !n.HitIgnore && nodeContains(n, wx, wy) {
		return n
	}
	return nil
}

// nodeContains tests a world-space point against the node's hit region in
// local space.
func nodeContains(n *Node, wx, wy float64) bool {
	lx, ly := n.ToLocal(wx, wy)
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Type == NodeTypeSprite && n.Image != nil {
		b := n.Image.Bounds()
		return lx >= 0 && lx <= float64(b.Dx()) && ly >= 0 && ly <= float64(b.Dy())
	}
	// Containers have no implicit bounds.
	return false
}

// --- Input processing ---

// processInput consumes one injected pointer event if queued, otherwise
// samples the real mouse, and synthesizes click and double-click events.
func (s *Stage) processInput() {
	if s.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed, MouseButtonLeft)
}

// processPointer advances the pointer state machine with one sample.
// A click fires when a press and the matching release both land on the same
// node; a second click on that node within DoubleClickTicks also fires the
// double-click callback.
func (s *Stage) processPointer(wx, wy float64, pressed bool, button MouseButton) {
	switch {
	case pressed && !s.pointer.down:
		s.pointer.down = true
		s.pointer.button = button
		s.pointer.hitNode = s.HitTest(wx, wy)

	case !pressed && s.pointer.down:
		s.pointer.down = false
		target := s.HitTest(wx, wy)
		if target != nil && target == s.pointer.hitNode {
			s.fireClick(target, wx, wy, s.pointer.button)
		}
		s.pointer.hitNode = nil
	}
}

// fireClick invokes the node's click callback, and its double-click callback
// when this is the second click on the same node within the double-click
// window.
func (s *Stage) fireClick(node *Node, wx, wy float64, button MouseButton) {
	lx, ly := node.ToLocal(wx, wy)
	ctx := ClickContext{
		Node:     node,
		UserData: node.UserData,
		GlobalX:  wx,
		GlobalY:  wy,
		LocalX:   lx,
		LocalY:   ly,
		Button:   button,
	}

	if node.OnClick != nil {
		node.OnClick(ctx)
	}

	tick := s.ticker.Frame()
	if node.ID != 0 && node.ID == s.lastClickID && tick-s.lastClickTick <= s.DoubleClickTicks {
		if node.OnDoubleClick != nil {
			node.OnDoubleClick(ctx)
		}
		// Require a fresh pair for the next double click.
		s.lastClickID = 0
		return
	}
	s.lastClickID = node.ID
	s.lastClickTick = tick
}
