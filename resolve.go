package nestedfade

// resolveParent returns the nearest live FadeGroup for f: the walk starts at
// f's own node, so an adapter sharing a node with a group depends on it, and
// moves up to the root. f itself is never returned; disabled, not yet enabled
// and destroyed groups are skipped. Returns nil at the top of the hierarchy.
//
// The result depends only on the tree and on which groups are live, so it is
// recomputed from scratch on every structural change rather than patched.
func resolveParent(f *FadeNode) *FadeGroup {
	for n := f.owner; n != nil; n = n.Parent {
		g := n.group
		if g == nil || &g.FadeNode == f {
			continue
		}
		if g.live && !g.dead {
			return g
		}
	}
	return nil
}
