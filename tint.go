package nestedfade

// Built-in bridge kinds.
const (
	KindTint      = "tint"
	KindText      = "text"
	KindParticles = "particles"
)

// TintFader fades sprite and mesh nodes by writing the total alpha into
// Node.Color.A. The RGB channels are left alone.
type TintFader struct {
	FadeNode
	target *Node
}

// NewTintFader returns a detached TintFader.
func NewTintFader() *TintFader {
	t := &TintFader{}
	t.init(t, t, KindTint)
	return t
}

// ResolveReferences picks up the owner if it is a sprite or mesh.
func (t *TintFader) ResolveReferences(owner *Node) {
	if t.target == owner {
		return
	}
	t.target = nil
	if owner != nil && (owner.Type == NodeTypeSprite || owner.Type == NodeTypeMesh) {
		t.target = owner
	}
}

// CaptureAlpha keeps the tint's authored alpha as the self alpha.
func (t *TintFader) CaptureAlpha(owner *Node) (float64, bool) {
	t.ResolveReferences(owner)
	if t.target == nil {
		return 0, false
	}
	return t.target.Color.A, true
}

// ApplyAlpha writes total into the tint alpha.
func (t *TintFader) ApplyAlpha(total float64) {
	if t.target == nil || t.target.disposed {
		return
	}
	t.target.Color.A = total
}

// Reconcile restores the tint alpha if something wrote Color.A directly.
func (t *TintFader) Reconcile(total float64) {
	if t.target == nil || t.target.disposed {
		return
	}
	if t.target.Color.A != total {
		t.target.Color.A = total
	}
}

// Color returns the node's tint, or ColorWhite when there is none.
func (t *TintFader) Color() Color {
	t.ResolveReferences(t.owner)
	if t.target == nil {
		return ColorWhite
	}
	return t.target.Color
}

// SetColor sets the tint RGB and takes c.A as the new self alpha; the written
// alpha channel is the resulting total.
func (t *TintFader) SetColor(c Color) {
	t.ResolveReferences(t.owner)
	t.SetAlpha(c.A)
	if t.target != nil {
		t.target.Color = t.writtenColor(c)
	}
}
