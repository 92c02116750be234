package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeasure_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		m          Measure
		lineHeight float32
		ppu        float32
		want       float32
	}{
		{"percent scales by line height", PercentMeasure(0.5), 20, 1, 10},
		{"pixels divides by ppu", PixelsMeasure(16), 20, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.resolve(tt.lineHeight, tt.ppu); got != tt.want {
				t.Errorf("resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBitmapFont_GetChar_FallbackChain(t *testing.T) {
	tex := &Texture2D{handle: &TextureHandle{width: 16, height: 16}}
	atlas := NewSpriteAtlas(tex, mgl32.Vec2{8, 8})

	font := NewBitmapFont(atlas, "AB", FontCfg{})

	t.Run("regular style resolves directly", func(t *testing.T) {
		_, style, ok := font.GetChar(StyleRegular, 'A')
		if !ok || style != StyleRegular {
			t.Fatalf("GetChar(Regular, 'A') = (_, %v, %v), want (_, Regular, true)", style, ok)
		}
	})

	t.Run("bold falls back to regular", func(t *testing.T) {
		_, style, ok := font.GetChar(StyleBold, 'A')
		if !ok || style != StyleRegular {
			t.Fatalf("GetChar(Bold, 'A') = (_, %v, %v), want (_, Regular, true)", style, ok)
		}
	})

	t.Run("bold-italic falls back to bold then regular", func(t *testing.T) {
		_, style, ok := font.GetChar(StyleBoldItalic, 'A')
		if !ok || style != StyleRegular {
			t.Fatalf("GetChar(BoldItalic, 'A') = (_, %v, %v), want (_, Regular, true)", style, ok)
		}
	})

	t.Run("unknown rune fails even after fallback", func(t *testing.T) {
		_, _, ok := font.GetChar(StyleRegular, 'Z')
		if ok {
			t.Fatalf("GetChar(Regular, 'Z') ok = true, want false")
		}
	})
}

func TestBitmapFont_SetStyle_IndependentAtlas(t *testing.T) {
	tex := &Texture2D{handle: &TextureHandle{width: 16, height: 16}}
	atlas := NewSpriteAtlas(tex, mgl32.Vec2{8, 8})
	font := NewBitmapFont(atlas, "A", FontCfg{})

	boldTex := &Texture2D{handle: &TextureHandle{width: 8, height: 8}}
	boldAtlas := NewSpriteAtlas(boldTex, mgl32.Vec2{8, 8})
	font.SetStyle(StyleBold, boldAtlas, "A")

	_, style, ok := font.GetChar(StyleBold, 'A')
	if !ok || style != StyleBold {
		t.Fatalf("GetChar(Bold, 'A') = (_, %v, %v), want (_, Bold, true)", style, ok)
	}
}
