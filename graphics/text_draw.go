package graphics

import (
	"strings"
	"unicode"

	"github.com/go-gl/mathgl/mgl32"
)

// TextDrawCfg bundles a TextCfg with the transform draw_text_stateless
// needs: origin/rotation/scale are applied to every emitted glyph quad
// (§4.4 emission step, §6.1).
type TextDrawCfg struct {
	Origin mgl32.Vec2
	Rot    float32
	Scale  mgl32.Vec2
	TextCfg
}

// DrawText draws text using the scope's current stateful font settings
// (size, color, word-wrap, rich-text, alignment, progress).
func (rs *RenderScope) DrawText(origin mgl32.Vec2, rot float32, extents mgl32.Vec2, text string, font Font) {
	cfg := TextDrawCfg{
		Origin: origin,
		Rot:    rot,
		Scale:  mgl32.Vec2{1, 1},
		TextCfg: TextCfg{
			Extents:     extents,
			FontSize:    rs.fontSize,
			Font:        font,
			Color:       rs.fontColor,
			WordWrap:    rs.wordWrap,
			RichText:    rs.richText,
			HorAlign:    rs.horAlign,
			VerAlign:    rs.verAlign,
			Progress:    rs.progress,
			HasProgress: rs.hasProgress,
		},
	}
	rs.DrawTextStateless(cfg, text)
}

// bgDebugCol is the faint background the original draws behind every text
// block before glyph emission — handy for visualizing layout extents.
var bgDebugCol = Color{0.2, 0.2, 0.2, 0.15}

// DrawTextStateless draws text using only the settings in cfg, ignoring
// the scope's stateful font fields. The remaining submission properties
// (material, blending, pivot, culling, user data, pixels-per-unit) still
// come from the scope, exactly as every other draw call does (§4.4, §6.1).
func (rs *RenderScope) DrawTextStateless(cfg TextDrawCfg, text string) {
	rs.assertRenderStarted()

	metrics := rs.text.Load(text, cfg.TextCfg, rs.texPPU)
	lineCount := rs.text.LineCount()
	dy0 := cfg.VerAlign.dy0(cfg.Extents[1], metrics.lineHeight, lineCount)

	rs.DrawRect(RectSubmitCmd{
		Pos:     cfg.Origin,
		Rot:     cfg.Rot,
		Extents: cfg.Extents,
		Tint:    [4]Color{bgDebugCol, bgDebugCol, bgDebugCol, bgDebugCol},
	})

	tf := tfMatrix(cfg.Origin, cfg.Rot, mgl32.Vec2{cfg.Scale[0], -cfg.Scale[1]})
	lines := strings.Split(rs.text.SanitizedText(), "\n")

	cursorY := cfg.Extents[1] - dy0
	pindex := 0
	charsRevealed := 0

	for li := 0; li < len(lines) && li < lineCount; li++ {
		line := rs.text.Line(li)
		dx0, spaceWidth := cfg.HorAlign.dx0AndSpaces(cfg.Extents[0], metrics.spaceWidth, metrics.charSeparation, line)
		cursorX := dx0

		for _, c := range lines[li] {
			if cfg.HasProgress && pindex >= cfg.Progress {
				return
			}

			if unicode.IsSpace(c) {
				cursorX += 2*metrics.charSeparation + spaceWidth
				pindex++
				charsRevealed++
				continue
			}

			sprite, style, ok := cfg.Font.GetChar(StyleRegular, c)
			if !ok {
				pindex++
				continue
			}

			width := metrics.lineHeight
			if w, h := spriteDims(sprite); h != 0 {
				width = w / h * metrics.lineHeight
			}

			render := CharRenderData{Style: style}
			quads := []CharQuad{baseCharQuad(mgl32.Vec2{cursorX, cursorY}, width, metrics.lineHeight, cfg.Color)}
			for _, v := range []*CharVert{&quads[0].LU, &quads[0].LD, &quads[0].RD, &quads[0].RU} {
				v.UserData = rs.userData
			}

			for _, stackIdx := range rs.text.activeEffects(charsRevealed) {
				quads = applyRichEffect(cfg.Font, rs.text, stackIdx, quads, charsRevealed, c, &render)
			}

			for _, q := range quads {
				rs.emitCharQuad(q, sprite, tf)
			}

			cursorX += width + metrics.charSeparation
			pindex++
			charsRevealed++
		}
		pindex++ // newline advances progress by 1, matching the original's convention
		cursorY -= metrics.lineHeight
	}
}

func applyRichEffect(font Font, te *textEngine, stackIdx int, in []CharQuad, index int, c rune, render *CharRenderData) []CharQuad {
	cmd := te.rtfStack[stackIdx]
	funcs := font.RichFunctions()
	if cmd.Index < 0 || cmd.Index >= len(funcs) {
		return in
	}
	ctx := RichTextContext{Index: index, Char: c}
	var out []CharQuad
	fn := funcs[cmd.Index]
	for _, q := range in {
		fn.Draw(te.effectArgs(stackIdx), render, []CharQuad{q}, &out, ctx)
	}
	if len(out) == 0 {
		return in
	}
	return out
}

func (rs *RenderScope) emitCharQuad(q CharQuad, sprite Sprite, tf mgl32.Mat3) {
	uv := spriteUVs(sprite)
	verts := [4]Vertex{
		{Pos: screenVert(tf, q.LU.Pos), Tint: q.LU.Color, UV: uv[0], UserData: q.LU.UserData},
		{Pos: screenVert(tf, q.LD.Pos), Tint: q.LD.Color, UV: uv[1], UserData: q.LD.UserData},
		{Pos: screenVert(tf, q.RD.Pos), Tint: q.RD.Color, UV: uv[2], UserData: q.RD.UserData},
		{Pos: screenVert(tf, q.RU.Pos), Tint: q.RU.Color, UV: uv[3], UserData: q.RU.UserData},
	}

	tex := sprite.Handle
	if tex == nil {
		tex = whiteTexture
	}
	rs.batch.pushTriangles(verts[:], []uint16{0, 1, 2, 2, 3, 0}, tex, rs.blending, rs.Material(), rs.cfgFlags.Has(CfgCulling))
}

func baseCharQuad(cursor mgl32.Vec2, width, height float32, tint Color) CharQuad {
	lu := mgl32.Vec2{cursor[0], cursor[1]}
	ld := mgl32.Vec2{cursor[0], cursor[1] - height}
	rd := mgl32.Vec2{cursor[0] + width, cursor[1] - height}
	ru := mgl32.Vec2{cursor[0] + width, cursor[1]}
	return CharQuad{
		LU: CharVert{Pos: lu, Color: tint},
		LD: CharVert{Pos: ld, Color: tint},
		RD: CharVert{Pos: rd, Color: tint},
		RU: CharVert{Pos: ru, Color: tint},
	}
}

func spriteDims(s Sprite) (float32, float32) {
	d := s.Dims()
	return d[0], d[1]
}

func spriteUVs(s Sprite) [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{s.UVRect.LU(), s.UVRect.LD(), s.UVRect.RD(), s.UVRect.RU()}
}

func screenVert(tf mgl32.Mat3, p mgl32.Vec2) mgl32.Vec2 {
	r := tf.Mul3x1(mgl32.Vec3{p[0], p[1], 1})
	return mgl32.Vec2{r[0], r[1]}
}
