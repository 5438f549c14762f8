package nestedfade

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBlendModeEbitenBlend(t *testing.T) {
	tests := map[BlendMode]ebiten.Blend{
		BlendNormal: ebiten.BlendSourceOver,
		BlendAdd:    ebiten.BlendLighter,
		BlendErase:  ebiten.BlendDestinationOut,
		BlendBelow:  ebiten.BlendDestinationOver,
		BlendNone:   ebiten.BlendCopy,
	}
	for mode, want := range tests {
		if got := mode.EbitenBlend(); got != want {
			t.Errorf("BlendMode(%d).EbitenBlend() = %v, want %v", mode, got, want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{NodeTypeSprite.String(), "sprite"},
		{NodeTypeParticleEmitter.String(), "particles"},
		{NodeType(99).String(), "unknown"},
		{FadeEventReparent.String(), "reparent"},
		{RateRandomBetween.String(), "random-between"},
		{RateCurve.String(), "curve"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestColorWithAlpha(t *testing.T) {
	if c := ColorWhite.WithAlpha(0.5); c != (Color{1, 1, 1, 0.5}) {
		t.Errorf("WithAlpha = %v", c)
	}
	if c := (Color{0.2, 0.4, 0.6, 1}).WithAlpha(-2); c != (Color{0.2, 0.4, 0.6, -2}) {
		t.Errorf("WithAlpha should not clamp, got %v", c)
	}
}

func TestColorToRGBAPremultipliesAndClamps(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{Color{1, 1, 1, 2}, color.RGBA{255, 255, 255, 255}},
		{Color{1, 1, 1, -1}, color.RGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := tt.in.toRGBA(); got != tt.want {
			t.Errorf("%v.toRGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
