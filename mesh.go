package nestedfade

import "github.com/hajimehoshi/ebiten/v2"

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Color components are multiplied (vertex color * tint) and premultiplied by
// the tint alpha, which is the alpha the fade engine wrote into Node.Color.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(clamp01(tint.A))

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// ensureTransformedVerts grows the node's transformedVerts buffer to fit
// len(n.Vertices), using a high-water-mark strategy (never shrinks).
// Returns the resliced buffer.
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// NewQuadMesh creates a textured or solid w by h mesh node made of two
// triangles. A nil img uses WhitePixel.
func NewQuadMesh(name string, img *ebiten.Image, w, h float64) *Node {
	var sw, sh float32 = 1, 1
	if img != nil {
		b := img.Bounds()
		sw, sh = float32(b.Dx()), float32(b.Dy())
	}
	fw, fh := float32(w), float32(h)
	verts := []ebiten.Vertex{
		{DstX: 0, DstY: 0, SrcX: 0, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: fw, DstY: 0, SrcX: sw, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: fw, DstY: fh, SrcX: sw, SrcY: sh, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: 0, DstY: fh, SrcX: 0, SrcY: sh, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	return NewMesh(name, img, verts, []uint16{0, 1, 2, 0, 2, 3})
}

// NewPolygon creates a convex polygon mesh node from points using fan
// triangulation. With a nil img the polygon is solid; otherwise UVs map the
// points' bounding box onto the whole image. Fewer than 3 points give an
// empty mesh that draws nothing.
func NewPolygon(name string, img *ebiten.Image, points []Vec2) *Node {
	verts, inds := polygonFan(points, img)
	return NewMesh(name, img, verts, inds)
}

// polygonFan returns len(points) vertices and 3*(len(points)-2) indices with
// vertex 0 as the hub.
func polygonFan(points []Vec2, img *ebiten.Image) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	var minX, minY, bw, bh, iw, ih float64
	if img != nil {
		minX, minY = points[0].X, points[0].Y
		maxX, maxY := minX, minY
		for _, p := range points[1:] {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
		bw, bh = maxX-minX, maxY-minY
		b := img.Bounds()
		iw, ih = float64(b.Dx()), float64(b.Dy())
	}

	verts := make([]ebiten.Vertex, n)
	for i, p := range points {
		v := ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y), SrcX: 0.5, SrcY: 0.5, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
		if img != nil {
			v.SrcX, v.SrcY = 0, 0
			if bw > 0 {
				v.SrcX = float32((p.X - minX) / bw * iw)
			}
			if bh > 0 {
				v.SrcY = float32((p.Y - minY) / bh * ih)
			}
		}
		verts[i] = v
	}

	inds := make([]uint16, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds[i*3] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}
