package nestedfade

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a fade script.
type scriptStep struct {
	Action string   `yaml:"action"`
	Node   string   `yaml:"node,omitempty"`
	Value  *float64 `yaml:"value,omitempty"`
	Flag   *bool    `yaml:"exclude,omitempty"`
	To     string   `yaml:"to,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
}

// fadeScript is the top-level document of a fade script.
type fadeScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ErrEmptyScript is returned by LoadFadeScript for a script without steps.
var ErrEmptyScript = errors.New("no steps")

// ScriptRunner sequences fade operations across frames. It drives the engine
// through its public API (SetAlpha, SetExclude, SetEnabled, SetActive,
// AddChild, Dispose) so that scripted scenes exercise the same paths as
// application code. Attach to a Scene via SetScriptRunner.
//
// A script is YAML (JSON is accepted as well):
//
//	steps:
//	  - {action: alpha, node: hud/panel, value: 0.5}
//	  - {action: wait, frames: 30}
//	  - {action: reparent, node: hud/panel/icon, to: hud}
//	  - {action: deactivate, node: hud}
//
// Node paths are slash-separated names relative to the scene root.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadFadeScript parses a fade script and returns a ScriptRunner ready to be
// attached to a Scene via SetScriptRunner.
func LoadFadeScript(data []byte) (*ScriptRunner, error) {
	var script fadeScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse fade script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse fade script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		if st.Action == "" {
			return nil, fmt.Errorf("parse fade script: step %d has no action", i)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.exec(s, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) exec(s *Scene, st scriptStep) {
	if st.Action == "wait" {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return
	}

	n := s.root.FindChild(st.Node)
	if n == nil {
		logger.Warn("fade script: node not found", "action", st.Action, "node", st.Node)
		return
	}

	switch st.Action {
	case "alpha":
		f := scriptFadeNode(n)
		if f == nil || st.Value == nil {
			logger.Warn("fade script: alpha needs a fade node and a value", "node", st.Node)
			return
		}
		f.SetAlpha(*st.Value)
	case "exclude":
		f := scriptFadeNode(n)
		if f == nil || st.Flag == nil {
			logger.Warn("fade script: exclude needs a fade node and a flag", "node", st.Node)
			return
		}
		f.SetExclude(*st.Flag)
	case "enable", "disable":
		f := scriptFadeNode(n)
		if f == nil {
			logger.Warn("fade script: no fade node", "action", st.Action, "node", st.Node)
			return
		}
		f.SetEnabled(st.Action == "enable")
	case "activate":
		n.SetActive(true)
	case "deactivate":
		n.SetActive(false)
	case "reparent":
		to := s.root.FindChild(st.To)
		if to == nil {
			logger.Warn("fade script: reparent target not found", "node", st.Node, "to", st.To)
			return
		}
		if isAncestor(n, to) {
			logger.Warn("fade script: reparent would create a cycle", "node", st.Node, "to", st.To)
			return
		}
		to.AddChild(n)
	case "destroy":
		n.Dispose()
	default:
		logger.Warn("fade script: unknown action", "action", st.Action)
	}
}

// scriptFadeNode picks the FadeNode a script step addresses on n: the node's
// FadeGroup when it has one, otherwise its first component.
func scriptFadeNode(n *Node) *FadeNode {
	if n.group != nil {
		return &n.group.FadeNode
	}
	if len(n.components) > 0 {
		return n.components[0].fadeNode()
	}
	return nil
}
