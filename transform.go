package nestedfade

import "math"

// Matrices are 2D affine transforms stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// localMatrix maps the node's local space into its parent's: the pivot is
// moved to the origin, then the node is scaled, rotated and placed at (X, Y).
func localMatrix(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	a, b := cos*n.ScaleX, sin*n.ScaleX
	c, d := -sin*n.ScaleY, cos*n.ScaleY
	return [6]float64{
		a, b, c, d,
		n.X - (a*n.PivotX + c*n.PivotY),
		n.Y - (b*n.PivotX + d*n.PivotY),
	}
}

// mulMatrix returns p * m, applying m first.
func mulMatrix(p, m [6]float64) [6]float64 {
	var r [6]float64
	r[0] = p[0]*m[0] + p[2]*m[1]
	r[1] = p[1]*m[0] + p[3]*m[1]
	r[2] = p[0]*m[2] + p[2]*m[3]
	r[3] = p[1]*m[2] + p[3]*m[3]
	r[4], r[5] = applyMatrix(p, m[4], m[5])
	return r
}

func applyMatrix(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// refreshWorld brings the world matrices of n's subtree up to date. A node is
// recomputed when it is dirty or when an ancestor was recomputed in the same
// pass (force). Alpha takes no part in this; it is composed by fade groups.
func refreshWorld(n *Node, parent [6]float64, force bool) {
	if force = force || n.transformDirty; force {
		n.worldTransform = mulMatrix(parent, localMatrix(n))
		n.transformDirty = false
	}
	for _, c := range n.children {
		refreshWorld(c, n.worldTransform, force)
	}
}

// SetPosition moves the node within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.MarkDirty()
}

// SetScale sets the horizontal and vertical scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.MarkDirty()
}

// SetRotation sets the rotation in radians, clockwise in screen space.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.MarkDirty()
}

// SetPivot sets the local point that scaling and rotation happen around.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX, n.PivotY = px, py
	n.MarkDirty()
}

// MarkDirty schedules the node's world matrix for recomputation. Call it after
// writing X, Y, ScaleX, ScaleY, Rotation or the pivot fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// LocalToWorld maps a point in the node's local space to world space, as of
// the last Scene.Update or Scene.Draw.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return applyMatrix(n.worldTransform, lx, ly)
}
