package warren

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawNode renders a node and its children depth-first. Children are visited
// in ZIndex order (stable: insertion order breaks ties), giving painter's
// ordering within each container.
func (s *Stage) drawNode(target *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}

	// Cached subtrees render to an offscreen texture and present that
	// instead of traversing (see cache.go).
	if n.cacheEnabled {
		s.drawCachedNode(target, n)
		return
	}

	if n.Renderable && n.Type == NodeTypeSprite && n.Image != nil {
		drawSprite(target, n, n.worldTransform)
	}

	for _, child := range n.drawOrder() {
		s.drawNode(target, child)
	}
}

// drawSprite submits one DrawImage call for a sprite node using the given
// world transform.
func drawSprite(target *ebiten.Image, n *Node, world [6]float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, world[0])
	op.GeoM.SetElement(1, 0, world[1])
	op.GeoM.SetElement(0, 1, world[2])
	op.GeoM.SetElement(1, 1, world[3])
	op.GeoM.SetElement(0, 2, world[4])
	op.GeoM.SetElement(1, 2, world[5])

	a := float32(n.Color.A * n.worldAlpha)
	op.ColorScale.Scale(
		float32(n.Color.R)*a,
		float32(n.Color.G)*a,
		float32(n.Color.B)*a,
		a,
	)
	op.Filter = ebiten.FilterNearest
	target.DrawImage(n.Image, &op)
}

// drawOrder returns the node's children sorted by ZIndex. The slice is a
// reused buffer; callers must not retain it across frames.
func (n *Node) drawOrder() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if n.childrenSorted && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	n.sortedChildren = n.sortedChildren[:0]
	n.sortedChildren = append(n.sortedChildren, n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}

// subtreeBounds computes the bounding rectangle of a node's renderable
// content (its own sprite and all descendants) in the node's own frame of
// reference. Returns a zero Rect when the subtree has no renderable sprites.
func subtreeBounds(n *Node) Rect {
	var r Rect
	first := true
	subtreeBoundsWalk(n, identityTransform, &r, &first)
	return r
}

// subtreeBoundsWalk accumulates sprite rects. transform maps n's frame into
// the subtree root's frame; the root itself is visited with identity.
func subtreeBoundsWalk(n *Node, transform [6]float64, r *Rect, first *bool) {
	if n.Renderable && n.Type == NodeTypeSprite && n.Image != nil {
		b := n.Image.Bounds()
		w := float64(b.Dx())
		h := float64(b.Dy())
		x0, y0 := transformPoint(transform, 0, 0)
		x1, y1 := transformPoint(transform, w, h)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		nr := Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
		if *first {
			*r = nr
			*first = false
		} else {
			*r = unionRect(*r, nr)
		}
	}

	for _, child := range n.children {
		if !child.Visible {
			continue
		}
		m := multiplyAffine(transform, computeLocalTransform(child))
		subtreeBoundsWalk(child, m, r, first)
	}
}

// unionRect returns the smallest rectangle containing both a and b.
func unionRect(a, b Rect) Rect {
	x0 := a.X
	if b.X < x0 {
		x0 = b.X
	}
	y0 := a.Y
	if b.Y < y0 {
		y0 = b.Y
	}
	x1 := a.X + a.Width
	if b.X+b.Width > x1 {
		x1 = b.X + b.Width
	}
	y1 := a.Y + a.Height
	if b.Y+b.Height > y1 {
		y1 = b.Y + b.Height
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// renderSubtree draws a node's subtree into target with the subtree's local
// bounds origin mapped to (0, 0). Used for cache textures. Alpha is baked in
// relative to the subtree root (the root's own alpha is applied at present
// time), so cached content stays valid when only the root's alpha changes.
func (s *Stage) renderSubtree(target *ebiten.Image, n *Node, bounds Rect) {
	offset := [6]float64{1, 0, 0, 1, -bounds.X, -bounds.Y}
	if n.Renderable && n.Type == NodeTypeSprite && n.Image != nil {
		drawSpriteWithAlpha(target, n, offset, 1.0)
	}
	renderSubtreeWalk(target, n, offset, 1.0)
}

// renderSubtreeWalk draws descendants using transforms relative to the
// subtree root, composed with the bounds offset.
func renderSubtreeWalk(target *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64) {
	for _, child := range n.drawOrder() {
		if !child.Visible {
			continue
		}
		m := multiplyAffine(parent, computeLocalTransform(child))
		alpha := parentAlpha * child.Alpha
		if child.Renderable && child.Type == NodeTypeSprite && child.Image != nil {
			drawSpriteWithAlpha(target, child, m, alpha)
		}
		renderSubtreeWalk(target, child, m, alpha)
	}
}

// drawSpriteWithAlpha draws a sprite with an explicit accumulated alpha
// instead of the node's cached worldAlpha.
func drawSpriteWithAlpha(target *ebiten.Image, n *Node, m [6]float64, alpha float64) {
	saved := n.worldAlpha
	n.worldAlpha = alpha
	drawSprite(target, n, m)
	n.worldAlpha = saved
}
