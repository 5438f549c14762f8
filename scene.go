package nestedfade

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and drives the
// per-frame work: transforms, particle simulation, the optional fade script,
// and the reconciliation tick of every live FadeNode.
type Scene struct {
	root   *Node
	debug  bool
	runner *ScriptRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances the scene by one tick (1/TPS seconds).
func (s *Scene) Update() {
	s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta advances the scene by dt seconds. Order: world transforms,
// particles, one fade script step, then the reconciliation tick in pre-order,
// so a group's pending self alpha is applied before its subscribers check
// theirs.
func (s *Scene) UpdateDelta(dt float64) {
	refreshWorld(s.root, identityMatrix, false)
	updateParticles(s.root, dt)
	if s.runner != nil {
		s.runner.step(s)
	}
	s.root.tickSubtree()

	if s.debug {
		if err := debugCheckSubscriptions(s.root); err != nil {
			logger.Error("fade subscriptions out of sync", "err", err)
		}
	}
}

// SetScriptRunner attaches a ScriptRunner to the scene. One step runs per
// Update, before the reconciliation tick. Pass nil to detach.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, bridge
// provisioning is logged at debug level, and the subscription lists are
// verified after every Update.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
