package nestedfade

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, nestedfade is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types; behavior beyond rendering is attached as components.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed, refreshed by Scene.Update and Scene.Draw
	worldTransform [6]float64
	transformDirty bool

	Visible bool

	// Metadata
	UserData any
	EntityID uint32

	// Sprite and mesh fields. Color.A is the alpha channel written by TintFader.
	Color     Color
	BlendMode BlendMode
	Image     *ebiten.Image // nil draws WhitePixel scaled by ScaleX/ScaleY

	// Mesh fields (NodeTypeMesh)
	Vertices         []ebiten.Vertex
	Indices          []uint16
	transformedVerts []ebiten.Vertex

	// Particle fields (NodeTypeParticleEmitter)
	Emitter *ParticleEmitter

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// Lifecycle
	active     bool
	components []Component
	group      *FadeGroup // the node's FadeGroup component, if any
	disposed   bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.active = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node. A nil img renders a solid Color rectangle
// of ScaleX by ScaleY pixels.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	return n
}

// NewMesh creates a mesh node that uses DrawTriangles for rendering.
func NewMesh(name string, img *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{
		Name:     name,
		Type:     NodeTypeMesh,
		Image:    img,
		Vertices: vertices,
		Indices:  indices,
	}
	nodeDefaults(n)
	return n
}

// NewParticleEmitter creates a particle emitter node with a preallocated pool.
func NewParticleEmitter(name string, cfg EmitterConfig) *Node {
	n := &Node{
		Name:      name,
		Type:      NodeTypeParticleEmitter,
		BlendMode: cfg.BlendMode,
		Emitter:   newParticleEmitter(cfg),
	}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content and face.
// face may be nil; the node then has a color but draws nothing.
func NewText(name string, content string, face *TTFFont) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content: content,
			Font:    face,
			Color:   ColorWhite,
		},
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, -1)
}

// AddChildAt inserts child at the given index; -1 appends.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("nestedfade: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("nestedfade: adding child would create a cycle")
	}
	if index < -1 || index > len(n.children) {
		panic("nestedfade: child index out of range")
	}

	wasActive := child.ActiveInHierarchy()
	oldParent := child.Parent
	if oldParent != nil {
		oldParent.removeChildByPtr(child)
	}
	child.Parent = n
	if index == -1 || index >= len(n.children) {
		n.children = append(n.children, child)
	} else {
		n.children = append(n.children, nil)
		copy(n.children[index+1:], n.children[index:])
		n.children[index] = child
	}
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}

	child.hierarchyMoved(wasActive)
	if oldParent != nil && oldParent != n {
		oldParent.notifyChildrenChanged()
	}
	n.notifyChildrenChanged()
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("nestedfade: child's parent is not this node")
	}
	wasActive := child.ActiveInHierarchy()
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
	child.hierarchyMoved(wasActive)
	n.notifyChildrenChanged()
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("nestedfade: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindChild resolves a slash-separated path of child names relative to n,
// e.g. "hud/panel/title". Empty segments are ignored. Returns nil when any
// segment is missing.
func (n *Node) FindChild(path string) *Node {
	cur := n
	for _, name := range strings.Split(path, "/") {
		if name == "" {
			continue
		}
		var next *Node
		for _, c := range cur.children {
			if c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// --- Activity ---

// SetActive sets the node's own active flag. Components in the subtree are
// enabled or disabled as their active-in-hierarchy state flips.
func (n *Node) SetActive(active bool) {
	if n.active == active {
		return
	}
	was := n.ActiveInHierarchy()
	n.active = active
	now := n.ActiveInHierarchy()
	switch {
	case !was && now:
		n.enableSubtree()
	case was && !now:
		n.disableSubtree()
	}
}

// Active reports the node's own active flag.
func (n *Node) Active() bool {
	return n.active
}

// ActiveInHierarchy reports whether this node and all of its ancestors are
// active. Disposed nodes are never active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.active || p.disposed {
			return false
		}
	}
	return true
}

// --- Disposal ---

// Dispose destroys every component in the subtree, removes this node from its
// parent, marks it as disposed, and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.destroySubtree()
	parent := n.Parent
	if parent != nil {
		parent.removeChildByPtr(n)
		n.Parent = nil
	}
	n.dispose()
	if parent != nil {
		parent.notifyChildrenChanged()
	}
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.components = nil
	n.group = nil
	n.Image = nil
	n.transformedVerts = nil
	n.Emitter = nil
	n.TextBlock = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
