package nestedfade

import "fmt"

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("nestedfade debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold", "node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// debugCheckSubscriptions verifies that every subscriber of every live group
// in the subtree resolves to that group, and the reverse. Returns the first
// inconsistency found.
func debugCheckSubscriptions(root *Node) error {
	var err error
	walk(root, func(n *Node) bool {
		for _, c := range n.components {
			f := c.fadeNode()
			if f.parent != nil && !containsNode(f.parent.subs, f) {
				err = fmt.Errorf("node %q: parent group on %q does not list it", n.Name, f.parent.owner.Name)
				return false
			}
			if f.live && f.parent != resolveParent(f) {
				err = fmt.Errorf("node %q: stale parent group", n.Name)
				return false
			}
		}
		if g := n.group; g != nil {
			for _, s := range g.subs {
				if s.parent != g {
					err = fmt.Errorf("group on %q: subscriber on %q resolves elsewhere", n.Name, s.owner.Name)
					return false
				}
			}
		}
		return true
	})
	return err
}

func containsNode(list []*FadeNode, f *FadeNode) bool {
	for _, s := range list {
		if s == f {
			return true
		}
	}
	return false
}

// walk visits n and its descendants in pre-order until visit returns false.
func walk(n *Node, visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
