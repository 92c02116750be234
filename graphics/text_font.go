package graphics

// TextStyle selects which sub-atlas of a font a character is drawn from.
type TextStyle int

const (
	StyleRegular TextStyle = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// MeasureKind distinguishes a font metric expressed as a fraction of the
// font size from one expressed in fixed pixels.
type MeasureKind int

const (
	MeasurePercent MeasureKind = iota
	MeasurePixels
)

// Measure is either a Percent (0..1, relative to font size) or Pixels
// (relative to the render target, divided by pixels-per-unit).
type Measure struct {
	Kind  MeasureKind
	Value float32
}

func PercentMeasure(v float32) Measure { return Measure{MeasurePercent, v} }
func PixelsMeasure(v float32) Measure  { return Measure{MeasurePixels, v} }

func (m Measure) resolve(lineHeight, ppu float32) float32 {
	if m.Kind == MeasurePercent {
		return m.Value * lineHeight
	}
	return m.Value / ppu
}

// FontCfg holds a font's layout metrics.
type FontCfg struct {
	Monospace      bool
	SpaceWidth     Measure
	CharSeparation Measure
	LineSeparation Measure
}

// Font resolves a (style, rune) pair to a sprite, falls back gracefully
// across styles, and exposes its rich-text function registry.
type Font interface {
	GetChar(style TextStyle, r rune) (Sprite, TextStyle, bool)
	Cfg() *FontCfg
	RichFunctions() []RichTextFunction
}

// BitmapFont is a monospace-only font backed by a SpriteAtlas indexed by a
// charset string in row-major order, per style.
type BitmapFont struct {
	cfg        FontCfg
	styles     map[TextStyle]*styledAtlas
	richFuncs  []RichTextFunction
}

type styledAtlas struct {
	atlas *SpriteAtlas
	rects map[rune][2]int
}

// NewBitmapFont builds a regular-style bitmap font from atlas and charset
// (one rune per cell, row-major).
func NewBitmapFont(atlas *SpriteAtlas, charset string, cfg FontCfg) *BitmapFont {
	f := &BitmapFont{cfg: cfg, styles: map[TextStyle]*styledAtlas{}}
	f.SetStyle(StyleRegular, atlas, charset)
	return f
}

// SetStyle registers (or replaces) the atlas backing one style.
func (f *BitmapFont) SetStyle(style TextStyle, atlas *SpriteAtlas, charset string) {
	w, _ := atlas.Handle().Dims()
	cw, _ := atlas.CellSize()
	widthInCells := w / cw
	if widthInCells <= 0 {
		widthInCells = 1
	}

	sa := &styledAtlas{atlas: atlas, rects: map[rune][2]int{}}
	i := 0
	for _, r := range charset {
		col := i % widthInCells
		row := i / widthInCells
		sa.rects[r] = [2]int{col, row}
		i++
	}
	f.styles[style] = sa
}

// SetRichFunctions installs the font's registered rich-text tag handlers.
func (f *BitmapFont) SetRichFunctions(funcs []RichTextFunction) { f.richFuncs = funcs }

func (f *BitmapFont) Cfg() *FontCfg                      { return &f.cfg }
func (f *BitmapFont) RichFunctions() []RichTextFunction { return f.richFuncs }

// GetChar resolves r under style, falling back Bold/Italic -> Regular,
// BoldItalic -> Bold, exactly as the original font-resolution chain does.
func (f *BitmapFont) GetChar(style TextStyle, r rune) (Sprite, TextStyle, bool) {
	for {
		sa, ok := f.styles[style]
		if ok {
			if cell, ok := sa.rects[r]; ok {
				return sa.atlas.Get(cell[0], cell[1]), style, true
			}
		}
		switch style {
		case StyleRegular:
			return Sprite{}, style, false
		case StyleBold, StyleItalic:
			style = StyleRegular
		case StyleBoldItalic:
			style = StyleBold
		default:
			return Sprite{}, style, false
		}
	}
}
