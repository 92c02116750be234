package graphics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
)

// TextCfg describes one draw_text/draw_text_stateless submission: layout
// extents, the font to draw with, and the feature toggles that gate
// word-wrap and rich-text tag parsing (§4.4).
type TextCfg struct {
	Extents    mgl32.Vec2
	FontSize   float32
	Font       Font
	Color      Color
	WordWrap   bool
	RichText   bool
	HorAlign   HorTextAlign
	VerAlign   VerTextAlign
	Progress   int  // number of sanitized chars to reveal; ignored if HasProgress is false
	HasProgress bool
}

// graphicMetrics are the resolved, ppu-scaled measures driving layout.
type graphicMetrics struct {
	lineHeight     float32
	charSeparation float32
	spaceWidth     float32 // already includes charSeparation
}

func calculateGraphicMetrics(cfg TextCfg, texPPU float32) graphicMetrics {
	lineHeight := cfg.FontSize / texPPU
	fcfg := cfg.Font.Cfg()
	charSep := fcfg.CharSeparation.resolve(lineHeight, texPPU)
	spaceWidth := fcfg.SpaceWidth.resolve(lineHeight, texPPU) + charSep
	return graphicMetrics{lineHeight: lineHeight, charSeparation: charSep, spaceWidth: spaceWidth}
}

// lineData accumulates one line's layout-relevant totals as the sanitizer
// walks it (§4.4 step 1).
type lineData struct {
	minWidth       float32
	spacelessWidth float32
	wordWrapped    bool
	spaceCount     uint32
}

// textEngine owns the sanitize/word-wrap/rich-text-tag pipeline: it turns
// raw UTF-8 text into a line-broken, rich-tag-stripped character stream
// plus per-line layout totals and a stack of active rich-text effect
// activations (§4.4).
type textEngine struct {
	sanitized strings.Builder
	lines     []lineData

	rtfStack []rtCmd
	rtfArgs  []string
}

func newTextEngine() *textEngine {
	return &textEngine{}
}

// Load sanitizes text per cfg, populating the engine's sanitized buffer,
// per-line data, and rich-text activation stack.
func (te *textEngine) Load(text string, cfg TextCfg, texPPU float32) graphicMetrics {
	te.sanitized.Reset()
	te.lines = te.lines[:0]
	te.rtfStack = te.rtfStack[:0]
	te.rtfArgs = te.rtfArgs[:0]

	metrics := calculateGraphicMetrics(cfg, texPPU)
	g := newGear()

	// runeCount mirrors draw_text_stateless's charsRevealed counter: it
	// advances once per space and once per resolved glyph, skipping
	// newlines and glyphs the font can't resolve. Rich-text activation
	// indices are recorded against this count rather than the sanitized
	// buffer's byte length, since word/space runs are written to the
	// buffer lazily and would otherwise desync tag boundaries that fall
	// mid-word from the positions draw_text_stateless later queries.
	runeCount := 0

	emit := func(c rune) {
		sprite, _, ok := cfg.Font.GetChar(StyleRegular, c)
		if !ok {
			return
		}
		w, h := 0, 0
		if sprite.Handle != nil {
			w, h = sprite.Handle.Dims()
		}
		size := sprite.UVRect.Size()
		pw := float32(w) * size[0]
		ph := float32(h) * size[1]
		width := metrics.lineHeight
		if ph != 0 {
			width = pw / ph * metrics.lineHeight
		}
		g.pushChar(c, width, metrics.charSeparation)
		runeCount++

		if cfg.WordWrap && g.toBeWrapped(cfg.Extents[0]) {
			g.wrapLine(&te.sanitized, &te.lines)
		}
	}

	runes := []rune(text)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == '\r':
			i++
			continue
		case c == '\n':
			g.popLine(&te.sanitized, &te.lines)
			i++
			continue
		case unicode.IsSpace(c):
			g.pushSpace(c, metrics.spaceWidth, &te.sanitized)
			runeCount++
			i++
		case cfg.RichText && c == '<':
			if i+1 < len(runes) && runes[i+1] == '<' {
				emit('<')
				i += 2
				continue
			}
			closing := false
			j := i + 1
			if j < len(runes) && runes[j] == '/' {
				closing = true
				j++
			}
			name, argsStr, next, ok := parseTag(runes, j, closing)
			if ok && !closing {
				te.rtfPush(name, argsStr, cfg.Font, runeCount)
			} else if closing {
				te.rtfPop(runeCount)
			}
			i = next
		default:
			emit(c)
			i++
		}
	}
	g.finalize(&te.sanitized, &te.lines)
	return metrics
}

func (te *textEngine) SanitizedText() string { return te.sanitized.String() }
func (te *textEngine) LineCount() int        { return len(te.lines) }
func (te *textEngine) Line(i int) lineData   { return te.lines[i] }

func (te *textEngine) rtfPush(name, args string, font Font, charIndex int) {
	funcs := font.RichFunctions()
	idx := -1
	trimmed := strings.TrimSpace(name)
	for k, f := range funcs {
		if strings.TrimSpace(f.TagName()) == trimmed {
			idx = k
			break
		}
	}
	if idx < 0 {
		log().Warn("unrecognized rich text function", "tag", trimmed)
		return
	}
	te.rtfStack = append(te.rtfStack, rtCmd{Index: idx, Active: true, CharIndex: charIndex})
	te.rtfArgs = append(te.rtfArgs, args)
}

func (te *textEngine) rtfPop(charIndex int) {
	te.rtfStack = append(te.rtfStack, rtCmd{Active: false, CharIndex: charIndex})
	te.rtfArgs = append(te.rtfArgs, "")
}

// activeEffects returns the rtfStack indices of the activations open at
// sanitized-char-stream position charIndex, outermost first. Callers
// resolve the rich function through rtfStack[i].Index and its arguments
// through effectArgs(i).
func (te *textEngine) activeEffects(charIndex int) []int {
	var stack []int
	for i, cmd := range te.rtfStack {
		if cmd.CharIndex > charIndex {
			break
		}
		if cmd.Active {
			stack = append(stack, i)
		} else if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}
	return stack
}

func (te *textEngine) effectArgs(stackEntry int) []string {
	if stackEntry < 0 || stackEntry >= len(te.rtfArgs) {
		return nil
	}
	if te.rtfArgs[stackEntry] == "" {
		return nil
	}
	return strings.Split(te.rtfArgs[stackEntry], ",")
}

// parseTag reads a "name" or "name=args" sequence starting at position
// start (just after '<', or just after "</" for closing tags), returning the
// index just past the terminating '>'. For closing tags it only scans
// past the '>' and returns ok=false (nothing to push).
func parseTag(runes []rune, start int, closing bool) (name, args string, next int, ok bool) {
	if closing {
		i := start
		for i < len(runes) && runes[i] != '>' {
			i++
		}
		if i < len(runes) {
			i++
		}
		return "", "", i, false
	}

	i := start
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	nameStart := i
	for i < len(runes) && runes[i] != '=' && runes[i] != '>' {
		if runes[i] == '\n' {
			return "", "", i, false
		}
		i++
	}
	nameEnd := i
	name = string(runes[nameStart:nameEnd])

	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i >= len(runes) {
		return "", "", i, false
	}
	if runes[i] == '>' {
		return name, "", i + 1, true
	}
	if runes[i] != '=' {
		return "", "", i, false
	}
	i++
	argsStart := i
	for i < len(runes) && runes[i] != '>' && runes[i] != '\n' {
		i++
	}
	args = string(runes[argsStart:i])
	if i < len(runes) {
		i++
	}
	return name, args, i, true
}

// engineGear is the sanitizer state machine: it walks one character at a
// time, accumulating word/space runs and committing them to the sanitized
// buffer + current line totals on transitions (§4.4 step 1).
type engineGear struct {
	wordStart, wordEnd   int // unused byte offsets; runs are buffered directly
	wordBuf              strings.Builder
	spaceBuf             strings.Builder

	line       lineData
	wordWidth  float32
	spaceWidth float32
	onWord     bool
}

func newGear() *engineGear {
	return &engineGear{onWord: true}
}

func (g *engineGear) pushSpace(c rune, spaceCharWidth float32, sanitized *strings.Builder) {
	if g.onWord {
		g.pushBatch(sanitized, nil)
	}
	g.spaceWidth += spaceCharWidth
	g.spaceBuf.WriteRune(c)
	g.onWord = false
}

func (g *engineGear) pushChar(c rune, width, charSeparation float32) {
	if !g.onWord {
		g.wordWidth = 0
	}
	g.wordBuf.WriteRune(c)
	g.wordWidth += width + charSeparation
	g.onWord = true
}

// pushBatch commits any pending space run then word run to sanitized
// (when non-nil) and folds their widths into the current line.
func (g *engineGear) pushBatch(sanitized *strings.Builder, _ *[]lineData) bool {
	committed := false
	if g.spaceBuf.Len() > 0 {
		if sanitized != nil {
			sanitized.WriteString(g.spaceBuf.String())
		}
		g.line.spaceCount += uint32(utf8.RuneCountInString(g.spaceBuf.String()))
		g.line.minWidth += g.spaceWidth
		g.spaceBuf.Reset()
		g.spaceWidth = 0
		committed = true
	}
	if g.wordBuf.Len() > 0 {
		if sanitized != nil {
			sanitized.WriteString(g.wordBuf.String())
		}
		g.line.minWidth += g.wordWidth
		g.line.spacelessWidth += g.wordWidth
		g.wordBuf.Reset()
		g.wordWidth = 0
		committed = true
	}
	return committed
}

func (g *engineGear) popLine(sanitized *strings.Builder, lines *[]lineData) {
	g.pushBatch(sanitized, lines)
	*lines = append(*lines, g.line)
	g.line = lineData{}
	g.onWord = false
	sanitized.WriteByte('\n')
}

func (g *engineGear) wrapLine(sanitized *strings.Builder, lines *[]lineData) {
	g.line.wordWrapped = true
	*lines = append(*lines, g.line)
	g.line = lineData{}
	g.spaceBuf.Reset()
	g.spaceWidth = 0
	sanitized.WriteByte('\n')
}

func (g *engineGear) finalize(sanitized *strings.Builder, lines *[]lineData) {
	if g.pushBatch(sanitized, lines) {
		*lines = append(*lines, g.line)
	}
}

func (g *engineGear) toBeWrapped(extentsWidth float32) bool {
	return g.line.minWidth+g.wordWidth+g.spaceWidth > extentsWidth && g.line.minWidth > 0
}
