package nestedfade

// FadeGroup is a FadeNode that other FadeNodes can depend on. Every FadeNode
// attached at or below the group's node resolves to the nearest live group and
// subscribes to it; the group pushes its total alpha to its subscribers on
// every recomputation and tells them where to go when it stops serving.
type FadeGroup struct {
	FadeNode

	// OnAlphaChanged, if set, is called after subscribers were updated.
	OnAlphaChanged func(total float64)
	// OnReparent, if set, is called after a reparent broadcast with the
	// ancestor the former subscribers moved to (nil for top level).
	OnReparent func(ancestor *FadeGroup)

	subs  []*FadeNode // in registration order
	store EntityStore
}

// NewFadeGroup returns a detached FadeGroup. Attach it with Node.AddComponent
// or use Node.AddFadeGroup.
func NewFadeGroup() *FadeGroup {
	g := &FadeGroup{}
	g.init(g, groupSink{g}, "")
	return g
}

// Subscribers returns the FadeNodes currently resolved to this group, in
// registration order. The returned slice MUST NOT be mutated by the caller.
func (g *FadeGroup) Subscribers() []*FadeNode {
	return g.subs
}

// SetEntityStore routes the group's AlphaChanged and Reparent events to store.
// Pass nil to stop.
func (g *FadeGroup) SetEntityStore(store EntityStore) {
	g.store = store
}

// ProvisionBridges attaches missing bridge adapters in the group's subtree.
// It runs automatically on activation and on structural changes.
func (g *FadeGroup) ProvisionBridges() {
	if g.owner == nil || g.dead {
		return
	}
	provisionBridges(g.owner, false)
}

// --- Component overrides ---

func (g *FadeGroup) enable() {
	if g.live || g.dead {
		return
	}
	g.live = true
	g.updateParent()
	provisionBridges(g.owner, false)
	g.resolveDomain()
}

func (g *FadeGroup) disable() {
	if !g.live {
		return
	}
	to := g.parent
	g.FadeNode.disable()
	g.broadcastReparent(to)
}

func (g *FadeGroup) childrenChanged() {
	if !g.live {
		return
	}
	provisionBridges(g.owner, true)
}

func (g *FadeGroup) destroy() {
	if g.dead {
		return
	}
	g.disable()
	g.dead = true
	g.subs = nil
	g.store = nil
}

// --- Subscription ---

func (g *FadeGroup) subscribe(f *FadeNode) {
	for _, s := range g.subs {
		if s == f {
			return
		}
	}
	g.subs = append(g.subs, f)
}

func (g *FadeGroup) unsubscribe(f *FadeNode) {
	for i, s := range g.subs {
		if s == f {
			copy(g.subs[i:], g.subs[i+1:])
			g.subs[len(g.subs)-1] = nil
			g.subs = g.subs[:len(g.subs)-1]
			return
		}
	}
}

// broadcastAlpha recomputes every subscriber against the group's new total.
func (g *FadeGroup) broadcastAlpha() {
	if len(g.subs) > 0 {
		subs := make([]*FadeNode, len(g.subs))
		copy(subs, g.subs)
		for _, s := range subs {
			s.recompute()
		}
	}
	if g.OnAlphaChanged != nil {
		g.OnAlphaChanged(g.total)
	}
	g.emit(FadeEventAlphaChanged, nil)
}

// broadcastReparent moves every subscriber to ancestor and empties the list.
func (g *FadeGroup) broadcastReparent(ancestor *FadeGroup) {
	subs := g.subs
	g.subs = nil
	for _, s := range subs {
		s.parent = nil
		s.reparent(ancestor)
	}
	if g.OnReparent != nil {
		g.OnReparent(ancestor)
	}
	g.emit(FadeEventReparent, ancestor)
}

// resolveDomain re-resolves every live FadeNode co-located with the group and
// below it, without descending past a node that hosts another live group.
// That group itself is re-resolved; its own subtree depends on it and is
// unaffected.
func (g *FadeGroup) resolveDomain() {
	g.resolveAt(g.owner)
	for _, child := range g.owner.children {
		g.resolveBelow(child)
	}
}

func (g *FadeGroup) resolveBelow(n *Node) {
	if !n.active {
		return
	}
	g.resolveAt(n)
	if n.group != nil && n.group.live {
		return
	}
	for _, child := range n.children {
		g.resolveBelow(child)
	}
}

func (g *FadeGroup) resolveAt(n *Node) {
	for _, c := range n.snapshotComponents() {
		f := c.fadeNode()
		if f == &g.FadeNode || !f.live {
			continue
		}
		f.updateParent()
	}
}

// groupSink turns a group's recomputation into a broadcast.
type groupSink struct {
	g *FadeGroup
}

func (groupSink) ResolveReferences(*Node) {}

func (s groupSink) ApplyAlpha(float64) {
	s.g.broadcastAlpha()
}
