package nestedfade

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Draw renders the visible, active part of the tree onto screen in tree
// order. The alpha written by the fade engine (Node.Color.A,
// TextBlock.Color.A, particle tints) is the alpha used; node hierarchy does
// not contribute alpha of its own.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.drawNode(screen, s.root)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible || !n.active || n.disposed {
		return
	}
	if n.transformDirty {
		// Nodes added since the last Update have no world transform yet.
		parent := identityMatrix
		if n.Parent != nil {
			parent = n.Parent.worldTransform
		}
		refreshWorld(n, parent, false)
	}

	switch n.Type {
	case NodeTypeSprite:
		drawSprite(dst, n)
	case NodeTypeMesh:
		drawMesh(dst, n)
	case NodeTypeParticleEmitter:
		drawParticles(dst, n)
	case NodeTypeText:
		drawText(dst, n)
	}

	for _, child := range n.children {
		s.drawNode(dst, child)
	}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// colorScale returns c as a premultiplied ebiten.ColorScale.
func colorScale(c Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := clamp01(c.A)
	cs.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	return cs
}

func drawSprite(dst *ebiten.Image, n *Node) {
	if n.Color.A <= 0 {
		return
	}
	img := n.Image
	if img == nil {
		img = WhitePixel
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(n.worldTransform)
	op.ColorScale = colorScale(n.Color)
	op.Blend = n.BlendMode.EbitenBlend()
	dst.DrawImage(img, op)
}

func drawMesh(dst *ebiten.Image, n *Node) {
	if len(n.Vertices) == 0 || len(n.Indices) == 0 || n.Color.A <= 0 {
		return
	}
	verts := ensureTransformedVerts(n)
	transformVertices(n.Vertices, verts, n.worldTransform, n.Color)
	img := n.Image
	if img == nil {
		img = WhitePixel
	}
	op := &ebiten.DrawTrianglesOptions{Blend: n.BlendMode.EbitenBlend()}
	dst.DrawTriangles(verts, n.Indices, img, op)
}

func drawText(dst *ebiten.Image, n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Font == nil || tb.Content == "" || tb.Color.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(n.worldTransform)
	op.ColorScale = colorScale(tb.Color)
	op.Blend = n.BlendMode.EbitenBlend()
	op.LineSpacing = tb.lineHeight()
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, tb.Content, tb.Font.face, op)
}

// drawParticles draws every live particle as a WhitePixel quad. A particle's
// alpha is its lifetime alpha times its tint alpha times the node tint alpha.
func drawParticles(dst *ebiten.Image, n *Node) {
	e := n.Emitter
	if e == nil || e.alive == 0 {
		return
	}
	world := geoM(n.worldTransform)
	op := &ebiten.DrawImageOptions{}
	op.Blend = n.BlendMode.EbitenBlend()
	for i := 0; i < e.alive; i++ {
		p := &e.particles[i]
		a := float64(p.alpha) * p.tint.A * n.Color.A
		if a <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(float64(p.scale), float64(p.scale))
		op.GeoM.Translate(p.x, p.y)
		op.GeoM.Concat(world)
		op.ColorScale = colorScale(Color{
			R: float64(p.colorR) * n.Color.R,
			G: float64(p.colorG) * n.Color.G,
			B: float64(p.colorB) * n.Color.B,
			A: a,
		})
		dst.DrawImage(WhitePixel, op)
	}
}
