package nestedfade

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextBlock holds text content and formatting. Color.A is the alpha channel
// written by TextFader.
type TextBlock struct {
	Content    string
	Font       *TTFFont
	Align      TextAlign
	Color      Color
	LineHeight float64 // override; 0 = use Font.LineHeight()
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("nestedfade: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- TextFader ---

// TextFader fades text nodes by writing the total alpha into TextBlock.Color.A.
type TextFader struct {
	FadeNode
	block *TextBlock
}

// NewTextFader returns a detached TextFader.
func NewTextFader() *TextFader {
	t := &TextFader{}
	t.init(t, t, KindText)
	return t
}

// ResolveReferences re-acquires the owner's TextBlock, which may have been
// replaced or removed since the last write.
func (t *TextFader) ResolveReferences(owner *Node) {
	t.block = nil
	if owner != nil && !owner.disposed {
		t.block = owner.TextBlock
	}
}

// CaptureAlpha keeps the text's authored alpha as the self alpha.
func (t *TextFader) CaptureAlpha(owner *Node) (float64, bool) {
	t.ResolveReferences(owner)
	if t.block == nil {
		return 0, false
	}
	return t.block.Color.A, true
}

// ApplyAlpha writes total into the text color alpha.
func (t *TextFader) ApplyAlpha(total float64) {
	if t.block == nil {
		return
	}
	t.block.Color.A = total
}

// Reconcile restores the text alpha if something wrote it directly.
func (t *TextFader) Reconcile(total float64) {
	t.ResolveReferences(t.owner)
	if t.block != nil && t.block.Color.A != total {
		t.block.Color.A = total
	}
}

// Color returns the text color, or opaque black when there is no TextBlock.
func (t *TextFader) Color() Color {
	t.ResolveReferences(t.owner)
	if t.block == nil {
		return Color{0, 0, 0, 1}
	}
	return t.block.Color
}

// SetColor sets the text RGB and takes c.A as the new self alpha.
func (t *TextFader) SetColor(c Color) {
	t.SetAlpha(c.A)
	t.ResolveReferences(t.owner)
	if t.block != nil {
		t.block.Color = t.writtenColor(c)
	}
}

// Text returns the text content, or "" when there is no TextBlock.
func (t *TextFader) Text() string {
	t.ResolveReferences(t.owner)
	if t.block == nil {
		return ""
	}
	return t.block.Content
}

// SetText replaces the text content. No-op without a TextBlock.
func (t *TextFader) SetText(s string) {
	t.ResolveReferences(t.owner)
	if t.block != nil {
		t.block.Content = s
	}
}
