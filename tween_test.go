package nestedfade

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenFadeInterpolates(t *testing.T) {
	node := NewContainer("fade")
	f := NewFadeNode(nil)
	node.AddComponent(f)

	tw := TweenFade(f, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(f.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", f.Alpha)
	}
	if math.Abs(f.AlphaTotal()-f.Alpha) > 1e-9 {
		t.Errorf("AlphaTotal = %f, want it to follow Alpha %f", f.AlphaTotal(), f.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(f.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", f.Alpha)
	}

	tw.Update(0.1)
	if !tw.Done {
		t.Error("should stay done")
	}
}

func TestTweenFadeCascadesThroughGroups(t *testing.T) {
	root := NewContainer("root")
	g := root.AddFadeGroup()
	panel := NewContainer("panel")
	root.AddChild(panel)
	panel.AddFadeGroup().SetAlpha(0.5)
	s := NewSprite("s", nil)
	panel.AddChild(s)

	tw := TweenFade(&g.FadeNode, 0.5, 1.0, ease.Linear)
	tw.Update(0.5)
	assertAlpha(t, "sprite at halfway", s.Color.A, 0.5*g.Alpha)
	tw.Update(0.5)

	if math.Abs(s.Color.A-0.25) > 0.01 {
		t.Errorf("sprite alpha = %f, want ~0.25 in the same frame", s.Color.A)
	}
}

func TestTweenFadeOnDetachedNode(t *testing.T) {
	f := NewFadeNode(nil)
	tw := TweenFade(f, 0.2, 1.0, ease.Linear)
	tw.Update(0.5)
	tw.Update(0.5)

	if math.Abs(f.AlphaTotal()-0.2) > 0.01 {
		t.Errorf("AlphaTotal = %f, want ~0.2 before the node is resolved", f.AlphaTotal())
	}
}

func TestTweenFadeWhileGroupDisabled(t *testing.T) {
	root := NewContainer("root")
	outer := root.AddFadeGroup()
	outer.SetAlpha(0.5)
	s := NewSprite("s", nil)
	root.AddChild(s)
	outer.SetEnabled(false)

	tw := TweenFade(&tintOf(t, s).FadeNode, 0.4, 0.5, ease.Linear)
	tw.Update(0.25)
	tw.Update(0.25)
	if math.Abs(s.Color.A-0.4) > 0.01 {
		t.Errorf("sprite alpha = %f, want ~0.4 with the group disabled", s.Color.A)
	}

	outer.SetEnabled(true)
	if math.Abs(s.Color.A-0.2) > 0.01 {
		t.Errorf("sprite alpha = %f, want ~0.2 once the group is back", s.Color.A)
	}
}

func TestTweenFadeEasing(t *testing.T) {
	linear := NewFadeNode(nil)
	cubic := NewFadeNode(nil)
	NewContainer("a").AddComponent(linear)
	NewContainer("b").AddComponent(cubic)

	TweenFade(linear, 0, 1, ease.Linear).Update(0.5)
	TweenFade(cubic, 0, 1, ease.OutCubic).Update(0.5)

	if cubic.AlphaTotal() >= linear.AlphaTotal() {
		t.Errorf("OutCubic should fade faster early: linear=%f cubic=%f", linear.AlphaTotal(), cubic.AlphaTotal())
	}
}

func TestTweenFadeStopsWhenDestroyed(t *testing.T) {
	node := NewContainer("fade")
	f := NewFadeNode(nil)
	node.AddComponent(f)

	tw := TweenFade(f, 0.0, 1.0, ease.Linear)
	tw.Update(0.25)
	node.RemoveComponent(f)
	saved := f.Alpha

	tw.Update(0.25)
	if !tw.Done {
		t.Fatal("expected Done after the fade node was destroyed")
	}
	if f.Alpha != saved {
		t.Errorf("Alpha changed to %f after destroy", f.Alpha)
	}
}

func TestNodeTweensMarkDirtyAndStopOnDispose(t *testing.T) {
	node := NewContainer("n")
	node.transformDirty = false

	tweens := []*TweenGroup{
		TweenPosition(node, 10, 10, 1, ease.Linear),
		TweenScale(node, 2, 2, 1, ease.Linear),
		TweenRotation(node, 1, 1, ease.Linear),
	}
	for _, tw := range tweens {
		tw.Update(0.5)
	}
	if !node.transformDirty {
		t.Error("node tweens should mark the node dirty")
	}

	node.Dispose()
	x := node.X
	for _, tw := range tweens {
		tw.Update(0.5)
		if !tw.Done {
			t.Error("tween should stop on a disposed node")
		}
	}
	if node.X != x {
		t.Errorf("X changed to %f on a disposed node", node.X)
	}
}
