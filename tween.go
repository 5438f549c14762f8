package nestedfade

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenFade, TweenPosition, TweenScale) and call
// Update(dt) each frame. After the fields are written the group runs its apply
// hook: TweenFade recomputes the fade cascade, the node tweens mark the node
// dirty. If the target node is disposed or the target FadeNode destroyed, the
// group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	fade   *FadeNode
	apply  func()
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and runs the apply hook. If the target is gone, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.stale() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.apply != nil {
		g.apply()
	}
}

func (g *TweenGroup) stale() bool {
	if g.target != nil && g.target.IsDisposed() {
		return true
	}
	return g.fade != nil && g.fade.Destroyed()
}

// TweenFade creates a TweenGroup that animates a FadeNode's self alpha to the
// given value. Every step goes through SetAlpha, so the new total reaches
// subscribers and paintables in the same frame.
func TweenFade(f *FadeNode, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, fade: f}
	g.tweens[0] = gween.New(float32(f.Alpha), float32(to), duration, fn)
	g.fields[0] = &f.Alpha
	g.apply = func() { f.SetAlpha(f.Alpha) }
	return g
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node, apply: node.MarkDirty}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node, apply: node.MarkDirty}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node, apply: node.MarkDirty}
	g.tweens[0] = gween.New(float32(node.Rotation), float32(to), duration, fn)
	g.fields[0] = &node.Rotation
	return g
}
