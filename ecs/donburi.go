// Package ecs provides ECS adapters for nestedfade.
package ecs

import (
	"github.com/phanxgames/nestedfade"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FadeEventType is the Donburi event type for FadeGroup events.
// Subscribe to this in your ECS systems to react to alpha changes and
// reparent broadcasts.
var FadeEventType = events.NewEventType[nestedfade.FadeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Fade events are published to FadeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) nestedfade.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event nestedfade.FadeEvent) {
	FadeEventType.Publish(s.world, event)
}
