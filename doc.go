// Package nestedfade composes alpha through nested fade groups on a 2D scene
// graph for [Ebitengine].
//
// A [FadeGroup] attached to a [Node] fades everything beneath it. Groups nest:
// each FadeNode's total alpha is its own alpha times the total alpha of the
// nearest live group above it, and the result is written into the content the
// node draws (sprite and mesh tint, text color, particle start color).
//
// # Quick start
//
//	scene := nestedfade.NewScene()
//
//	panel := nestedfade.NewContainer("panel")
//	scene.Root().AddChild(panel)
//	fade := panel.AddFadeGroup()
//
//	icon := nestedfade.NewSprite("icon", img)
//	panel.AddChild(icon) // a TintFader is attached automatically
//
//	fade.SetAlpha(0.5) // icon.Color.A is now 0.5
//
// Implement [ebiten.Game] and call [Scene.Update] and [Scene.Draw]:
//
//	func (g *Game) Update() error        { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//
// # Composition rules
//
// The parent group of a FadeNode is found by walking up from the node it is
// attached to, that node included, and taking the first group that is live.
// Disabled groups, groups on inactive nodes and destroyed groups are skipped.
// Setting [FadeNode.Exclude] cuts a node loose from its parent's alpha
// without changing its subscription.
//
// Structural changes (AddChild, RemoveChild, SetActive, Dispose, enabling or
// disabling a component) re-resolve parents immediately. A group that stops
// serving hands its subscribers to its own parent group.
//
// # Bridges
//
// Adapters for sprites, meshes, text and particle emitters are attached
// by every live group to the content nodes in its subtree. Custom adapters
// are added with [RegisterBridge] before the first group goes live. Use a
// [Retarget] to drive one FadeNode's alpha from another branch of the tree.
//
// # Scripts, tweens and ECS
//
// [TweenFade] animates a FadeNode's alpha with [gween]. [LoadFadeScript]
// reads a YAML script of fade operations that a [Scene] replays frame by
// frame. Group events can be forwarded to a [Donburi] world with the
// nestedfade/ecs adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package nestedfade
