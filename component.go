package nestedfade

// Component is a behavior attached to a Node. The node forwards its structural
// notifications to every attached component; the methods are unexported so
// only types built on FadeNode can be attached.
type Component interface {
	// attach is called once when the component is added to n.
	attach(n *Node)
	// enable is called when the component becomes live: its own enabled flag
	// is set and its node is active in hierarchy. Must be idempotent.
	enable()
	// disable is the reverse of enable. Must be idempotent.
	disable()
	// parentChanged is called when the node, or one of its ancestors, moved.
	parentChanged()
	// childrenChanged is called when a node was added to or removed from the
	// node's subtree.
	childrenChanged()
	// destroy is called once when the component or its node goes away.
	destroy()
	// tick is the once-per-Update callback.
	tick()
	// isEnabled reports the component's own enabled flag.
	isEnabled() bool
	// fadeNode returns the FadeNode the component is built on.
	fadeNode() *FadeNode
}

// AddComponent attaches c to the node. If the node is active in hierarchy and
// c is enabled, c is enabled immediately. Panics if c is nil, if the node is
// disposed, if c is a second FadeGroup on the node, or if an adapter of the
// same bridge kind is already attached.
func (n *Node) AddComponent(c Component) {
	if c == nil {
		panic("nestedfade: cannot add nil component")
	}
	if n.disposed {
		panic("nestedfade: AddComponent on disposed node " + n.Name)
	}
	f := c.fadeNode()
	if f.owner != nil {
		panic("nestedfade: component is already attached to node " + f.owner.Name)
	}
	if g, ok := c.(*FadeGroup); ok {
		if n.group != nil {
			panic("nestedfade: node " + n.Name + " already has a FadeGroup")
		}
		n.group = g
	}
	if f.kind != "" && n.adapterOfKind(f.kind) != nil {
		panic("nestedfade: node " + n.Name + " already has a " + f.kind + " adapter")
	}
	n.components = append(n.components, c)
	c.attach(n)
	if c.isEnabled() && n.ActiveInHierarchy() {
		c.enable()
	}
}

// RemoveComponent disables and destroys c and detaches it from the node.
// No-op if c is not attached to n.
func (n *Node) RemoveComponent(c Component) {
	idx := -1
	for i, have := range n.components {
		if have == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	c.disable()
	c.destroy()
	copy(n.components[idx:], n.components[idx+1:])
	n.components[len(n.components)-1] = nil
	n.components = n.components[:len(n.components)-1]
	if g, ok := c.(*FadeGroup); ok && n.group == g {
		n.group = nil
	}
}

// Components returns the attached components. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Components() []Component {
	return n.components
}

// FadeGroup returns the FadeGroup attached to the node, or nil.
func (n *Node) FadeGroup() *FadeGroup {
	return n.group
}

// AddFadeGroup attaches a new FadeGroup to the node and returns it. If the node
// already has one, the existing group is returned unchanged.
func (n *Node) AddFadeGroup() *FadeGroup {
	if n.group != nil {
		return n.group
	}
	g := NewFadeGroup()
	n.AddComponent(g)
	return g
}

// FadeNodes returns the FadeNode of every component attached to the node, in
// attachment order.
func (n *Node) FadeNodes() []*FadeNode {
	out := make([]*FadeNode, 0, len(n.components))
	for _, c := range n.components {
		out = append(out, c.fadeNode())
	}
	return out
}

// adapterOfKind returns the component provisioned for the given bridge kind.
func (n *Node) adapterOfKind(kind string) Component {
	for _, c := range n.components {
		if c.fadeNode().kind == kind {
			return c
		}
	}
	return nil
}

// snapshotComponents copies the component list so callbacks may attach or
// remove components while the caller iterates.
func (n *Node) snapshotComponents() []Component {
	if len(n.components) == 0 {
		return nil
	}
	out := make([]Component, len(n.components))
	copy(out, n.components)
	return out
}

// --- Notification dispatch ---

// hierarchyMoved delivers the notifications for a subtree rooted at n whose
// parent just changed. wasActive is n's active-in-hierarchy state before the move.
func (n *Node) hierarchyMoved(wasActive bool) {
	now := n.ActiveInHierarchy()
	switch {
	case wasActive && !now:
		n.disableSubtree()
	case !wasActive && now:
		n.enableSubtree()
	case now:
		n.notifyParentChanged()
	}
}

// notifyParentChanged sends parentChanged to every component in the subtree,
// parents first.
func (n *Node) notifyParentChanged() {
	for _, c := range n.snapshotComponents() {
		c.parentChanged()
	}
	for _, child := range n.children {
		child.notifyParentChanged()
	}
}

// notifyChildrenChanged sends childrenChanged to the components of n and of
// every ancestor, nearest first.
func (n *Node) notifyChildrenChanged() {
	for p := n; p != nil; p = p.Parent {
		for _, c := range p.snapshotComponents() {
			c.childrenChanged()
		}
	}
}

// enableSubtree enables every enabled component in the active part of the
// subtree, parents first.
func (n *Node) enableSubtree() {
	if !n.active || n.disposed {
		return
	}
	for _, c := range n.snapshotComponents() {
		if c.isEnabled() {
			c.enable()
		}
	}
	for _, child := range n.children {
		child.enableSubtree()
	}
}

// disableSubtree disables every component in the subtree, children first.
func (n *Node) disableSubtree() {
	for _, child := range n.children {
		child.disableSubtree()
	}
	comps := n.snapshotComponents()
	for i := len(comps) - 1; i >= 0; i-- {
		comps[i].disable()
	}
}

// destroySubtree disables and destroys every component in the subtree,
// children first.
func (n *Node) destroySubtree() {
	for _, child := range n.children {
		child.destroySubtree()
	}
	comps := n.snapshotComponents()
	for i := len(comps) - 1; i >= 0; i-- {
		comps[i].disable()
		comps[i].destroy()
	}
	n.group = nil
}

// tickSubtree runs the per-frame tick on every live component, parents first.
func (n *Node) tickSubtree() {
	if !n.active || n.disposed {
		return
	}
	for _, c := range n.snapshotComponents() {
		c.tick()
	}
	for i := 0; i < len(n.children); i++ {
		n.children[i].tickSubtree()
	}
}
