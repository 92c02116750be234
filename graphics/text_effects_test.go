package graphics

import (
	"testing"

	"github.com/pixelforge/pf2d/color"
)

func TestParseEffectColor(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Color
	}{
		{"no args defaults to white", nil, color.White},
		{"red", []string{"red"}, color.Red},
		{"green", []string{"green"}, color.Green},
		{"blue", []string{"blue"}, color.Blue},
		{"unknown name defaults to white", []string{"chartreuse"}, color.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEffectColor(tt.args); got != tt.want {
				t.Errorf("parseEffectColor(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPseudoRand_DeterministicAndBounded(t *testing.T) {
	a := pseudoRand(42)
	b := pseudoRand(42)
	if a != b {
		t.Errorf("pseudoRand(42) not deterministic: %v != %v", a, b)
	}
	if a < 0 || a > 1 {
		t.Errorf("pseudoRand(42) = %v, want value in [0, 1]", a)
	}
	if c := pseudoRand(43); c == a {
		t.Errorf("pseudoRand(42) and pseudoRand(43) collided: both = %v", a)
	}
}

func TestColorEffect_Draw_OverridesTint(t *testing.T) {
	in := []CharQuad{{
		LU: CharVert{Color: color.Black},
		LD: CharVert{Color: color.Black},
		RD: CharVert{Color: color.Black},
		RU: CharVert{Color: color.Black},
	}}
	var out []CharQuad
	ColorEffect{}.Draw([]string{"red"}, &CharRenderData{}, in, &out, RichTextContext{})

	if len(out) != 1 {
		t.Fatalf("Draw() produced %d quads, want 1", len(out))
	}
	q := out[0]
	for _, c := range []Color{q.LU.Color, q.LD.Color, q.RD.Color, q.RU.Color} {
		if c != color.Red {
			t.Errorf("corner color = %v, want Red", c)
		}
	}
}
