package nestedfade

import "slices"

// Bridge maps content node types to the adapter that fades them. One adapter
// kind may serve several node types.
type Bridge struct {
	// Kind names the adapter; a node carries at most one adapter per kind.
	Kind string
	// Sources are the node types the adapter is attached to.
	Sources []NodeType
	// New returns a fresh, detached adapter.
	New func() Component
}

// bridgeTable is the process-wide registry. It starts with the built-in
// adapters, accepts registrations until first use, and is read-only after.
type bridgeTable struct {
	entries []Bridge
	bySrc   map[NodeType][]int
	sealed  bool
}

var bridges = bridgeTable{
	entries: []Bridge{
		{Kind: KindTint, Sources: []NodeType{NodeTypeSprite, NodeTypeMesh}, New: func() Component { return NewTintFader() }},
		{Kind: KindText, Sources: []NodeType{NodeTypeText}, New: func() Component { return NewTextFader() }},
		{Kind: KindParticles, Sources: []NodeType{NodeTypeParticleEmitter}, New: func() Component { return NewParticleFader() }},
	},
}

// RegisterBridge adds an adapter to the registry. It must be called during
// startup, before any FadeGroup becomes live. Panics on a sealed registry, an
// empty or duplicate kind, or a missing constructor.
func RegisterBridge(b Bridge) {
	if bridges.sealed {
		panic("nestedfade: RegisterBridge after the bridge registry was first used")
	}
	if b.Kind == "" || b.New == nil {
		panic("nestedfade: bridge needs a Kind and a New constructor")
	}
	for _, e := range bridges.entries {
		if e.Kind == b.Kind {
			panic("nestedfade: duplicate bridge kind " + b.Kind)
		}
	}
	b.Sources = slices.Clone(b.Sources)
	bridges.entries = append(bridges.entries, b)
}

// Bridges returns a snapshot of the registry and seals it.
func Bridges() []Bridge {
	bridges.build()
	return slices.Clone(bridges.entries)
}

// build indexes the entries by source type exactly once.
func (t *bridgeTable) build() {
	if t.sealed {
		return
	}
	t.sealed = true
	t.bySrc = make(map[NodeType][]int)
	for i, e := range t.entries {
		for _, src := range e.Sources {
			t.bySrc[src] = append(t.bySrc[src], i)
		}
	}
}

func (t *bridgeTable) forType(typ NodeType) []int {
	t.build()
	return t.bySrc[typ]
}

// provisionBridges attaches every missing adapter at root and below. With
// domainOnly set, the walk does not descend below a node hosting another live
// group, since that group provisions its own subtree. Inactive nodes are
// provisioned too; their adapters enable when the node does.
func provisionBridges(root *Node, domainOnly bool) {
	provisionAt(root)
	for _, child := range root.children {
		provisionBelow(child, domainOnly)
	}
}

func provisionBelow(n *Node, domainOnly bool) {
	provisionAt(n)
	if domainOnly && n.group != nil && n.group.live {
		return
	}
	for _, child := range n.children {
		provisionBelow(child, domainOnly)
	}
}

func provisionAt(n *Node) {
	if n.disposed {
		return
	}
	for _, i := range bridges.forType(n.Type) {
		b := &bridges.entries[i]
		if n.adapterOfKind(b.Kind) != nil {
			continue
		}
		c := b.New()
		c.fadeNode().kind = b.Kind
		if globalDebug {
			logger.Debug("bridge adapter attached", "node", n.Name, "kind", b.Kind)
		}
		n.AddComponent(c)
	}
}
