package graphics

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/color"
)

// ColorEffect implements the <color=#rrggbbaa> / <color=name> rich-text
// tag: overrides every wrapped character's tint.
type ColorEffect struct{}

func (ColorEffect) TagName() string { return "color" }
func (ColorEffect) IsEvent() bool    { return false }

func (ColorEffect) Draw(args []string, render *CharRenderData, in []CharQuad, out *[]CharQuad, ctx RichTextContext) {
	c := parseEffectColor(args)
	for _, q := range in {
		q.LU.Color, q.LD.Color, q.RD.Color, q.RU.Color = c, c, c, c
		*out = append(*out, q)
	}
}

func parseEffectColor(args []string) Color {
	if len(args) == 0 {
		return color.White
	}
	switch args[0] {
	case "red":
		return color.Red
	case "green":
		return color.Green
	case "blue":
		return color.Blue
	case "black":
		return color.Black
	case "white":
		return color.White
	case "yellow":
		return color.Yellow
	default:
		s := args[0]
		if len(s) == 9 && s[0] == '#' {
			if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
				return color.RGBA8{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}.ToRGBA32()
			}
		}
		return color.White
	}
}

// WaveEffect implements <wave> / <wave=amplitude,speed>: offsets each
// character vertically by a sine wave phased by its index.
type WaveEffect struct{}

func (WaveEffect) TagName() string { return "wave" }
func (WaveEffect) IsEvent() bool    { return false }

func (WaveEffect) Draw(args []string, render *CharRenderData, in []CharQuad, out *[]CharQuad, ctx RichTextContext) {
	amplitude, speed := float32(0.2), float32(4.0)
	if len(args) > 0 {
		if v, err := strconv.ParseFloat(args[0], 32); err == nil {
			amplitude = float32(v)
		}
	}
	if len(args) > 1 {
		if v, err := strconv.ParseFloat(args[1], 32); err == nil {
			speed = float32(v)
		}
	}

	dy := amplitude * float32(math.Sin(float64(ctx.Time*speed+float32(ctx.Index))))
	offset := mgl32.Vec2{0, dy}
	for _, q := range in {
		q.LU.Pos = q.LU.Pos.Add(offset)
		q.LD.Pos = q.LD.Pos.Add(offset)
		q.RD.Pos = q.RD.Pos.Add(offset)
		q.RU.Pos = q.RU.Pos.Add(offset)
		*out = append(*out, q)
	}
}

// ShakeEffect implements <shake> / <shake=magnitude>: jitters each
// character by a small pseudo-random offset reseeded every frame.
type ShakeEffect struct{}

func (ShakeEffect) TagName() string { return "shake" }
func (ShakeEffect) IsEvent() bool    { return false }

func (ShakeEffect) Draw(args []string, render *CharRenderData, in []CharQuad, out *[]CharQuad, ctx RichTextContext) {
	magnitude := float32(0.05)
	if len(args) > 0 {
		if v, err := strconv.ParseFloat(args[0], 32); err == nil {
			magnitude = float32(v)
		}
	}

	seed := uint32(ctx.Index)*2654435761 + uint32(ctx.Time*1000)
	jx := (pseudoRand(seed) - 0.5) * 2 * magnitude
	jy := (pseudoRand(seed+1) - 0.5) * 2 * magnitude
	offset := mgl32.Vec2{jx, jy}

	for _, q := range in {
		q.LU.Pos = q.LU.Pos.Add(offset)
		q.LD.Pos = q.LD.Pos.Add(offset)
		q.RD.Pos = q.RD.Pos.Add(offset)
		q.RU.Pos = q.RU.Pos.Add(offset)
		*out = append(*out, q)
	}
}

func pseudoRand(seed uint32) float32 {
	seed ^= seed << 13
	seed ^= seed >> 17
	seed ^= seed << 5
	return float32(seed) / float32(math.MaxUint32)
}

// FadeEffect implements <fade> / <fade=duration>: ramps each character's
// alpha in over duration seconds, staggered by character index.
type FadeEffect struct{}

func (FadeEffect) TagName() string { return "fade" }
func (FadeEffect) IsEvent() bool    { return false }

func (FadeEffect) Draw(args []string, render *CharRenderData, in []CharQuad, out *[]CharQuad, ctx RichTextContext) {
	duration := float32(0.5)
	if len(args) > 0 {
		if v, err := strconv.ParseFloat(args[0], 32); err == nil && v > 0 {
			duration = float32(v)
		}
	}

	staggerPerChar := float32(0.05)
	t := (ctx.Time - float32(ctx.Index)*staggerPerChar) / duration
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	for _, q := range in {
		q.LU.Color.A *= t
		q.LD.Color.A *= t
		q.RD.Color.A *= t
		q.RU.Color.A *= t
		*out = append(*out, q)
	}
}

// DefaultRichTextFunctions returns the engine's four built-in rich-text
// effects, ready to register on a font.
func DefaultRichTextFunctions() []RichTextFunction {
	return []RichTextFunction{ColorEffect{}, WaveEffect{}, ShakeEffect{}, FadeEffect{}}
}
