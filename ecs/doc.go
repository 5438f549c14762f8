// Package ecs provides ECS adapters for nestedfade's FadeGroup events.
//
// The primary adapter is [NewDonburiStore], which bridges FadeGroup events
// (alpha changed, reparent) into a [Donburi] world as typed events. Subscribe
// to [FadeEventType] in your ECS systems to receive them. Set the node's
// EntityID so events can be matched to entities.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	panel.EntityID = uint32(entity.Id())
//	panel.AddFadeGroup().SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
