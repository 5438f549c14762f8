package nestedfade

// Retarget forwards its own total alpha into the self alpha of another
// FadeNode, which may live anywhere in the tree. It is attached manually; no
// bridge provisions it.
type Retarget struct {
	FadeNode
	target     *FadeNode
	forwarding bool
}

// NewRetarget returns a detached Retarget forwarding to target (may be nil).
func NewRetarget(target *FadeNode) *Retarget {
	r := &Retarget{target: target}
	r.init(r, r, "")
	return r
}

// Target returns the FadeNode receiving the forwarded alpha.
func (r *Retarget) Target() *FadeNode {
	return r.target
}

// SetTarget changes the receiving FadeNode and forwards the current total
// right away.
func (r *Retarget) SetTarget(target *FadeNode) {
	r.target = target
	r.recompute()
}

// ResolveReferences drops a destroyed target.
func (r *Retarget) ResolveReferences(*Node) {
	if r.target != nil && r.target.dead {
		r.target = nil
	}
}

// ApplyAlpha sets the target's self alpha to total. A chain of retargets that
// loops back onto itself stops at the first repeat.
func (r *Retarget) ApplyAlpha(total float64) {
	if r.target == nil || r.target == &r.FadeNode || r.forwarding {
		return
	}
	r.forwarding = true
	r.target.SetAlpha(total)
	r.forwarding = false
}
