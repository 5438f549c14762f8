package nestedfade

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- geoM ---

func TestGeoMMatchesAffine(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 3, 10, 20}
	g := geoM(m)

	x, y := g.Apply(4, 6)
	wx, wy := applyMatrix(m, 4, 6)
	assertNear(t, "x", x, wx)
	assertNear(t, "y", y, wy)
}

func TestGeoMIdentity(t *testing.T) {
	g := geoM(identityMatrix)
	if !g.IsInvertible() {
		t.Fatal("identity GeoM should be invertible")
	}
	x, y := g.Apply(7, 9)
	assertNear(t, "x", x, 7)
	assertNear(t, "y", y, 9)
}

// --- colorScale ---

func TestColorScalePremultiplies(t *testing.T) {
	cs := colorScale(Color{1, 0.5, 0.25, 0.5})
	tests := []struct {
		name      string
		got, want float32
	}{
		{"R", cs.R(), 0.5},
		{"G", cs.G(), 0.25},
		{"B", cs.B(), 0.125},
		{"A", cs.A(), 0.5},
	}
	for _, tt := range tests {
		if math.Abs(float64(tt.got-tt.want)) > 1e-6 {
			t.Errorf("%s = %f, want %f", tt.name, tt.got, tt.want)
		}
	}
}

func TestColorScaleClampsAlpha(t *testing.T) {
	hi := colorScale(Color{1, 1, 1, 2})
	if a := hi.A(); a != 1 {
		t.Errorf("A = %f, want 1", a)
	}
	lo := colorScale(Color{1, 1, 1, -1})
	if a := lo.A(); a != 0 {
		t.Errorf("A = %f, want 0", a)
	}
}

// --- Draw ---

func TestDrawRefreshesDirtyTransforms(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	parent.SetPosition(5, 5)
	s.Root().AddChild(parent)
	s.Update()

	child := NewSprite("child", nil)
	child.SetPosition(10, 0)
	parent.AddChild(child)

	s.Draw(ebiten.NewImage(32, 32))
	wx, wy := child.LocalToWorld(0, 0)
	assertNear(t, "wx", wx, 15)
	assertNear(t, "wy", wy, 5)
}

func TestDrawSkipsHiddenAndInactive(t *testing.T) {
	s := NewScene()
	hidden := NewSprite("hidden", nil)
	hidden.Visible = false
	inactive := NewContainer("inactive")
	inactive.SetActive(false)
	under := NewSprite("under", nil)
	inactive.AddChild(under)
	s.Root().AddChild(hidden)
	s.Root().AddChild(inactive)
	s.Update()
	hidden.SetPosition(1, 1)
	under.SetPosition(1, 1)

	s.Draw(ebiten.NewImage(8, 8))
	if !hidden.transformDirty || !under.transformDirty {
		t.Error("skipped nodes should not be visited")
	}
}

func TestDrawAllContentTypes(t *testing.T) {
	s := NewScene()
	g := s.Root().AddFadeGroup()
	g.SetAlpha(0.5)

	e := NewParticleEmitter("sparks", defaultTestConfig(20))
	e.Emitter.Start()
	s.Root().AddChild(NewSprite("sprite", nil))
	mesh := NewQuadMesh("mesh", nil, 4, 4)
	s.Root().AddChild(mesh)
	s.Root().AddChild(NewText("label", "hi", loadTestFont(t)))
	s.Root().AddChild(e)
	s.UpdateDelta(0.1)

	s.Draw(ebiten.NewImage(64, 64))

	verts := mesh.transformedVerts
	if len(verts) != 4 {
		t.Fatalf("mesh buffer = %d vertices, want 4", len(verts))
	}
	if math.Abs(float64(verts[0].ColorA)-0.5) > 1e-6 {
		t.Errorf("mesh vertex alpha = %f, want faded 0.5", verts[0].ColorA)
	}
}
