package warren

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order: Translate(-PivotX, -PivotY) -> Scale -> Translate(X, Y).
// Warren nodes do not rotate or skew; an axis-aligned matrix keeps hit
// testing and cache bounds exact.
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	return [6]float64{
		sx, 0,
		0, sy,
		n.X - n.PivotX*sx,
		n.Y - n.PivotY*sy,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.MarkDirty()
}

// SetScale sets the node's X and Y scale and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.MarkDirty()
}

// SetPivot sets the node's pivot point and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.MarkDirty()
}

// SetMirrored flips the node horizontally around its pivot. Mirroring is
// stored as the sign of ScaleX so it composes with scaling.
func (n *Node) SetMirrored(mirrored bool) {
	mag := n.ScaleX
	if mag < 0 {
		mag = -mag
	}
	if mirrored {
		n.ScaleX = -mag
	} else {
		n.ScaleX = mag
	}
	n.MarkDirty()
}

// Mirrored reports whether the node is horizontally flipped.
func (n *Node) Mirrored() bool {
	return n.ScaleX < 0
}

// MarkDirty flags the node's transform for recomputation on the next frame
// and invalidates any caching ancestor.
func (n *Node) MarkDirty() {
	n.transformDirty = true
	n.invalidateAncestorCache()
}

// WorldPosition returns the node's origin in world coordinates.
// Valid after the last Update; call Stage.Update first for fresh values.
func (n *Node) WorldPosition() (float64, float64) {
	return n.worldTransform[4], n.worldTransform[5]
}

// ToLocal converts a world-space point into this node's local space.
func (n *Node) ToLocal(wx, wy float64) (float64, float64) {
	inv := invertAffine(n.worldTransform)
	return transformPoint(inv, wx, wy)
}
