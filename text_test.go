package nestedfade

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T) *TTFFont {
	t.Helper()
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	return f
}

func textOf(t *testing.T, n *Node) *TextFader {
	t.Helper()
	c := n.adapterOfKind(KindText)
	if c == nil {
		t.Fatalf("%s has no text adapter", n.Name)
	}
	return c.(*TextFader)
}

// --- LoadTTFFont ---

func TestLoadTTFFont_InvalidData(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a TTF file"), 16)
	if err == nil {
		t.Error("expected error for invalid TTF data, got nil")
	}
}

func TestLoadTTFFont_Metrics(t *testing.T) {
	f := loadTestFont(t)
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %f, want > 0", f.LineHeight())
	}
	w, h := f.MeasureString("Hello")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = (%f, %f), want positive", w, h)
	}
	if f.Face() == nil {
		t.Error("Face should not be nil")
	}
}

// --- TextBlock ---

func TestNewText_SetsTextBlock(t *testing.T) {
	f := loadTestFont(t)
	n := NewText("label", "Hello", f)

	if n.Type != NodeTypeText {
		t.Errorf("Type = %d, want NodeTypeText", n.Type)
	}
	if n.TextBlock == nil {
		t.Fatal("TextBlock is nil")
	}
	if n.TextBlock.Content != "Hello" {
		t.Errorf("Content = %q, want \"Hello\"", n.TextBlock.Content)
	}
	if n.TextBlock.Font != f {
		t.Error("Font not set correctly")
	}
	if n.TextBlock.Color != ColorWhite {
		t.Errorf("TextBlock.Color = %+v, want white", n.TextBlock.Color)
	}
}

func TestTextBlock_LineHeight(t *testing.T) {
	f := loadTestFont(t)
	tb := &TextBlock{Font: f}
	if tb.lineHeight() != f.LineHeight() {
		t.Errorf("lineHeight = %f, want font line height %f", tb.lineHeight(), f.LineHeight())
	}
	tb.LineHeight = 40
	if tb.lineHeight() != 40 {
		t.Errorf("lineHeight = %f, want override 40", tb.lineHeight())
	}
	if (&TextBlock{}).lineHeight() != 0 {
		t.Error("lineHeight without a font should be 0")
	}
}

// --- TextFader ---

func TestTextFaderWritesColorAlpha(t *testing.T) {
	root := NewContainer("root")
	g := root.AddFadeGroup()
	label := NewText("label", "hi", nil)
	label.TextBlock.Color = Color{1, 0, 0, 1}
	root.AddChild(label)

	g.SetAlpha(0.5)
	if diff := cmp.Diff(Color{1, 0, 0, 0.5}, label.TextBlock.Color); diff != "" {
		t.Errorf("text color mismatch (-want +got):\n%s", diff)
	}
}

func TestTextKeepsAlphaWhenGroupAdded(t *testing.T) {
	root := NewContainer("root")
	label := NewText("label", "hi", nil)
	label.TextBlock.Color.A = 0.3
	root.AddChild(label)

	root.AddFadeGroup()
	assertAlpha(t, "text alpha", label.TextBlock.Color.A, 0.3)
	assertAlpha(t, "self alpha", textOf(t, label).Alpha, 0.3)
}

func TestTextInheritsNestedGroupAlpha(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	a.AddChild(b)
	b.AddChild(c)
	label := NewText("label", "hi", nil)
	label.TextBlock.Color.A = 0.5
	c.AddChild(label)

	for _, n := range []*Node{a, b, c} {
		n.AddFadeGroup().SetAlpha(0.5)
	}
	assertAlpha(t, "text alpha", label.TextBlock.Color.A, 0.0625)
}

func TestTextFaderSetColorAndText(t *testing.T) {
	root := NewContainer("root")
	root.AddFadeGroup().SetAlpha(0.5)
	label := NewText("label", "before", nil)
	root.AddChild(label)
	tf := textOf(t, label)

	tf.SetColor(Color{0, 0, 1, 0.5})
	if diff := cmp.Diff(Color{0, 0, 1, 0.25}, tf.Color()); diff != "" {
		t.Errorf("Color() mismatch (-want +got):\n%s", diff)
	}

	tf.SetText("after")
	if tf.Text() != "after" || label.TextBlock.Content != "after" {
		t.Errorf("Text = %q, want \"after\"", tf.Text())
	}
}

func TestTextFaderSetColorWhileInactive(t *testing.T) {
	root := NewContainer("root")
	root.AddFadeGroup().SetAlpha(0.5)
	label := NewText("label", "hi", nil)
	root.AddChild(label)
	tf := textOf(t, label)
	label.SetActive(false)

	tf.SetColor(Color{0, 0, 1, 0.6})
	if diff := cmp.Diff(Color{0, 0, 1, 0.6}, label.TextBlock.Color); diff != "" {
		t.Errorf("inactive text color mismatch (-want +got):\n%s", diff)
	}

	label.SetActive(true)
	assertAlpha(t, "reactivated", label.TextBlock.Color.A, 0.3)
}

func TestTextFaderMissingTextBlock(t *testing.T) {
	root := NewContainer("root")
	g := root.AddFadeGroup()
	label := NewText("label", "hi", nil)
	root.AddChild(label)
	tf := textOf(t, label)

	label.TextBlock = nil
	g.SetAlpha(0.5)
	if tf.Text() != "" {
		t.Errorf("Text = %q, want empty", tf.Text())
	}
	if tf.Color() != (Color{0, 0, 0, 1}) {
		t.Errorf("Color = %+v, want opaque black", tf.Color())
	}
	tf.SetText("ignored")
	tf.SetColor(ColorWhite)

	// a replacement block is picked up on the next write
	label.TextBlock = &TextBlock{Content: "new", Color: ColorWhite}
	g.SetAlpha(0.25)
	assertAlpha(t, "replacement alpha", label.TextBlock.Color.A, 0.25)
}

func TestTextFaderReconcile(t *testing.T) {
	s := NewScene()
	s.Root().AddFadeGroup().SetAlpha(0.5)
	label := NewText("label", "hi", nil)
	s.Root().AddChild(label)

	label.TextBlock.Color.A = 1
	s.Update()
	assertAlpha(t, "restored alpha", label.TextBlock.Color.A, 0.5)
}
