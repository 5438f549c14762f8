package nestedfade

// FadeEventType identifies a kind of FadeGroup event.
type FadeEventType uint8

const (
	FadeEventAlphaChanged FadeEventType = iota // the group recomputed its total alpha
	FadeEventReparent                          // the group stopped serving; subscribers moved to Ancestor
)

func (t FadeEventType) String() string {
	switch t {
	case FadeEventAlphaChanged:
		return "alpha-changed"
	case FadeEventReparent:
		return "reparent"
	default:
		return "unknown"
	}
}

// EntityStore is the interface for optional ECS integration.
// When set on a FadeGroup, its events are forwarded to the store.
type EntityStore interface {
	EmitEvent(event FadeEvent)
}

// FadeEvent carries FadeGroup event data for the ECS bridge.
type FadeEvent struct {
	Type     FadeEventType
	EntityID uint32 // EntityID of the group's node
	Node     string // Name of the group's node
	Total    float64
	// Ancestor is the EntityID of the node hosting the new ancestor group
	// (valid for FadeEventReparent; 0 at top level).
	Ancestor uint32
}

func (g *FadeGroup) emit(typ FadeEventType, ancestor *FadeGroup) {
	if g.store == nil || g.owner == nil {
		return
	}
	ev := FadeEvent{
		Type:     typ,
		EntityID: g.owner.EntityID,
		Node:     g.owner.Name,
		Total:    g.total,
	}
	if ancestor != nil && ancestor.owner != nil {
		ev.Ancestor = ancestor.owner.EntityID
	}
	g.store.EmitEvent(ev)
}
