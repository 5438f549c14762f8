package nestedfade

// Sink receives the output of a FadeNode. Adapters implement it to push the
// computed total alpha into an external paintable.
type Sink interface {
	// ResolveReferences is called before every write so the sink can acquire,
	// or re-acquire, its handle to the content on owner.
	ResolveReferences(owner *Node)
	// ApplyAlpha is called after every recomputation with the new total alpha.
	// It must tolerate a missing handle by skipping the write.
	ApplyAlpha(total float64)
}

// AlphaModifier is an optional Sink extension supplying an extra multiplicative
// alpha term. The default is 1.
type AlphaModifier interface {
	ExtraAlpha() float64
}

// AlphaCapturer is an optional Sink extension. CaptureAlpha is called once when
// the FadeNode is attached; when ok is true, alpha becomes the node's self alpha
// so that the first write does not change what is on screen.
type AlphaCapturer interface {
	CaptureAlpha(owner *Node) (alpha float64, ok bool)
}

// Reconciler is an optional Sink extension called once per Scene.Update while
// the node is live. It corrects external writes to the paintable.
type Reconciler interface {
	Reconcile(total float64)
}

// FadeNode is the base unit of alpha composition. It holds a self alpha, an
// exclude flag and the total alpha computed from them and from the resolved
// parent group:
//
//	total = (Exclude ? Alpha : Alpha * parent.total) * extra
//
// Alpha and Exclude may be written directly (by a tween or an inspector); the
// change is picked up by the next Scene.Update. SetAlpha and SetExclude apply
// immediately. Values are not clamped to [0, 1].
type FadeNode struct {
	// Alpha is the self alpha, independent of ancestors.
	Alpha float64
	// Exclude, when true, ignores the parent group's total alpha.
	Exclude bool

	total    float64
	parent   *FadeGroup
	owner    *Node
	self     Component
	sink     Sink
	kind     string // bridge kind, empty for groups and manual nodes
	disabled bool   // inverse of the component enabled flag so the zero value is enabled
	live     bool
	dead     bool
	resolved bool // set by the first live recomputation

	// values last applied through the recomputation path
	appliedAlpha   float64
	appliedExclude bool
}

// NewFadeNode returns a FadeNode that writes into sink. Attach it to a node
// with Node.AddComponent.
func NewFadeNode(sink Sink) *FadeNode {
	if sink == nil {
		sink = nopSink{}
	}
	f := &FadeNode{}
	f.init(f, sink, "")
	return f
}

func (f *FadeNode) init(self Component, sink Sink, kind string) {
	f.Alpha = 1
	f.total = 1
	f.appliedAlpha = 1
	f.self = self
	f.sink = sink
	f.kind = kind
}

// --- Public API ---

// SetAlpha sets the self alpha and recomputes the total immediately.
func (f *FadeNode) SetAlpha(v float64) {
	f.Alpha = v
	f.recompute()
}

// SetExclude sets the exclude flag and recomputes the total immediately. The
// parent subscription is unchanged.
func (f *FadeNode) SetExclude(v bool) {
	f.Exclude = v
	f.recompute()
}

// AlphaTotal returns the last computed total alpha. Before the node is first
// resolved it equals the self alpha.
func (f *FadeNode) AlphaTotal() float64 {
	return f.total
}

// ParentGroup returns the resolved parent group, or nil for a top-level or
// inactive node.
func (f *FadeNode) ParentGroup() *FadeGroup {
	return f.parent
}

// Owner returns the node the FadeNode is attached to, or nil.
func (f *FadeNode) Owner() *Node {
	return f.owner
}

// Kind returns the bridge kind of an adapter, or "" for groups and plain nodes.
func (f *FadeNode) Kind() string {
	return f.kind
}

// Enabled reports the component enabled flag.
func (f *FadeNode) Enabled() bool {
	return !f.disabled
}

// SetEnabled sets the component enabled flag. Disabling a live node
// unsubscribes it; enabling it on an active node resolves it from scratch.
func (f *FadeNode) SetEnabled(enabled bool) {
	if f.disabled == !enabled {
		return
	}
	f.disabled = !enabled
	if f.dead || f.owner == nil {
		return
	}
	if enabled {
		if f.owner.ActiveInHierarchy() {
			f.self.enable()
		}
	} else {
		f.self.disable()
	}
}

// Live reports whether the node is currently taking part in composition.
func (f *FadeNode) Live() bool {
	return f.live
}

// Destroyed reports whether the node was destroyed.
func (f *FadeNode) Destroyed() bool {
	return f.dead
}

// --- Component implementation ---

func (f *FadeNode) fadeNode() *FadeNode { return f }

func (f *FadeNode) isEnabled() bool { return !f.disabled }

func (f *FadeNode) attach(n *Node) {
	f.owner = n
	if c, ok := f.sink.(AlphaCapturer); ok {
		if a, ok := c.CaptureAlpha(n); ok {
			f.Alpha = a
		}
	}
	f.total = f.Alpha
	f.appliedAlpha = f.Alpha
	f.appliedExclude = f.Exclude
}

func (f *FadeNode) enable() {
	if f.live || f.dead {
		return
	}
	f.live = true
	f.updateParent()
}

func (f *FadeNode) disable() {
	if !f.live {
		return
	}
	f.live = false
	f.detachParent()
}

func (f *FadeNode) parentChanged() {
	if f.live {
		f.updateParent()
	}
}

func (f *FadeNode) childrenChanged() {}

func (f *FadeNode) destroy() {
	if f.dead {
		return
	}
	f.disable()
	f.dead = true
}

// tick re-applies Alpha and Exclude when they were written directly, then
// lets the sink reconcile its paintable.
func (f *FadeNode) tick() {
	if !f.live {
		return
	}
	if f.Alpha != f.appliedAlpha || f.Exclude != f.appliedExclude {
		f.recompute()
	}
	if r, ok := f.sink.(Reconciler); ok {
		r.Reconcile(f.total)
	}
}

// --- Resolution and recomputation ---

// updateParent re-resolves the parent group from the tree and recomputes.
func (f *FadeNode) updateParent() {
	if f.dead || f.owner == nil {
		return
	}
	f.setParent(resolveParent(f))
}

// setParent moves the subscription to p (unsubscribe old, subscribe new) and
// recomputes. An unchanged edge keeps its subscription slot.
func (f *FadeNode) setParent(p *FadeGroup) {
	if p != f.parent {
		f.detachParent()
		f.parent = p
		if p != nil {
			p.subscribe(f)
		}
	}
	f.recompute()
}

func (f *FadeNode) detachParent() {
	if f.parent != nil {
		f.parent.unsubscribe(f)
		f.parent = nil
	}
}

// reparent handles a reparent broadcast from the current parent group.
func (f *FadeNode) reparent(to *FadeGroup) {
	if f.dead || !f.live {
		return
	}
	f.setParent(to)
}

// recompute derives the total alpha and hands it to the sink. It is a no-op
// on a destroyed, inactive or orphaned node, except that the total tracks the
// self alpha until the node is first resolved.
func (f *FadeNode) recompute() {
	if f.dead || !f.live || f.owner == nil || f.owner.disposed {
		if !f.resolved && !f.dead {
			f.total = f.Alpha
		}
		return
	}
	f.resolved = true
	f.appliedAlpha = f.Alpha
	f.appliedExclude = f.Exclude

	f.sink.ResolveReferences(f.owner)

	parentAlpha := 1.0
	if f.parent != nil {
		parentAlpha = f.parent.total
	}
	total := f.Alpha
	if !f.Exclude {
		total *= parentAlpha
	}
	if m, ok := f.sink.(AlphaModifier); ok {
		total *= m.ExtraAlpha()
	}
	f.total = total
	f.sink.ApplyAlpha(total)
}

// writtenColor is c with the alpha a sink should store: the total while live,
// c.A otherwise.
func (f *FadeNode) writtenColor(c Color) Color {
	if !f.live {
		return c
	}
	return c.WithAlpha(f.total)
}

// nopSink discards every write.
type nopSink struct{}

func (nopSink) ResolveReferences(*Node) {}
func (nopSink) ApplyAlpha(float64)      {}
