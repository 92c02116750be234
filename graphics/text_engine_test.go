package graphics

import "testing"

// stubFont is a minimal Font for exercising textEngine without a live GPU
// texture: every rune except those listed in unknown resolves to a
// zero-value Sprite (the engine falls back to lineHeight-wide glyphs when
// a sprite carries no texture dimensions).
type stubFont struct {
	cfg     FontCfg
	funcs   []RichTextFunction
	unknown map[rune]bool
}

func (f *stubFont) GetChar(style TextStyle, r rune) (Sprite, TextStyle, bool) {
	if f.unknown[r] {
		return Sprite{}, style, false
	}
	return Sprite{}, StyleRegular, true
}

func (f *stubFont) Cfg() *FontCfg                     { return &f.cfg }
func (f *stubFont) RichFunctions() []RichTextFunction { return f.funcs }

func TestTextEngine_Load_Sanitize_StripsCarriageReturns(t *testing.T) {
	te := newTextEngine()
	font := &stubFont{}
	te.Load("ab\r\ncd", TextCfg{Extents: [2]float32{1000, 1000}, FontSize: 10, Font: font}, 1)
	if got := te.SanitizedText(); got != "ab\ncd" {
		t.Errorf("SanitizedText() = %q, want %q", got, "ab\ncd")
	}
}

func TestTextEngine_Load_NewlineBreaksLines(t *testing.T) {
	te := newTextEngine()
	font := &stubFont{}
	te.Load("ab\ncd", TextCfg{Extents: [2]float32{1000, 1000}, FontSize: 10, Font: font}, 1)
	if got := te.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	if got := te.Line(0).minWidth; got != 20 {
		t.Errorf("Line(0).minWidth = %v, want 20", got)
	}
	if got := te.Line(1).minWidth; got != 20 {
		t.Errorf("Line(1).minWidth = %v, want 20", got)
	}
}

func TestTextEngine_Load_WordWrap(t *testing.T) {
	te := newTextEngine()
	font := &stubFont{}
	metrics := te.Load("ab cd", TextCfg{
		Extents:  [2]float32{15, 1000},
		FontSize: 10,
		WordWrap: true,
		Font:     font,
	}, 1)

	if metrics.lineHeight != 10 {
		t.Fatalf("lineHeight = %v, want 10", metrics.lineHeight)
	}
	// the pending space before a wrap is trimmed, not emitted
	if got := te.SanitizedText(); got != "ab\ncd" {
		t.Fatalf("SanitizedText() = %q, want %q", got, "ab\ncd")
	}
	if got := te.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	if !te.Line(0).wordWrapped {
		t.Errorf("Line(0).wordWrapped = false, want true")
	}
	if te.Line(1).wordWrapped {
		t.Errorf("Line(1).wordWrapped = true, want false")
	}
}

func TestTextEngine_Load_WordWrap_FirstOverflowGuard(t *testing.T) {
	// A single word wider than Extents must not wrap before any content
	// has been committed to the line (min_width > 0 guard, §4.4 open
	// question 4).
	te := newTextEngine()
	font := &stubFont{}
	te.Load("abcdefgh", TextCfg{
		Extents:  [2]float32{15, 1000},
		FontSize: 10,
		WordWrap: true,
		Font:     font,
	}, 1)
	if got := te.LineCount(); got != 1 {
		t.Fatalf("LineCount() = %d, want 1 (no wrap before any committed content)", got)
	}
}

func TestTextEngine_Load_RichTextTagActivation(t *testing.T) {
	te := newTextEngine()
	font := &stubFont{funcs: []RichTextFunction{ColorEffect{}}}
	te.Load("<color=red>AB</color>C", TextCfg{
		Extents:  [2]float32{1000, 1000},
		FontSize: 10,
		RichText: true,
		Font:     font,
	}, 1)

	if got := te.SanitizedText(); got != "ABC" {
		t.Fatalf("SanitizedText() = %q, want %q (tags stripped)", got, "ABC")
	}

	if active := te.activeEffects(0); len(active) != 1 {
		t.Errorf("activeEffects(0) = %v, want exactly one active effect", active)
	}
	if active := te.activeEffects(2); len(active) != 0 {
		t.Errorf("activeEffects(2) = %v, want no active effects after </color>", active)
	}
}

func TestTextEngine_Load_UnrecognizedTagIsSkipped(t *testing.T) {
	te := newTextEngine()
	font := &stubFont{funcs: nil}
	te.Load("<bogus>AB</bogus>C", TextCfg{
		Extents:  [2]float32{1000, 1000},
		FontSize: 10,
		RichText: true,
		Font:     font,
	}, 1)
	if got := te.SanitizedText(); got != "ABC" {
		t.Errorf("SanitizedText() = %q, want %q (tag content passes through, tag itself stripped)", got, "ABC")
	}
	if active := te.activeEffects(0); len(active) != 0 {
		t.Errorf("activeEffects(0) = %v, want none (unrecognized tag never pushed)", active)
	}
}

func TestTextEngine_Load_EscapedAngleBracket(t *testing.T) {
	te := newTextEngine()
	font := &stubFont{}
	te.Load("<<not a tag>", TextCfg{
		Extents:  [2]float32{1000, 1000},
		FontSize: 10,
		RichText: true,
		Font:     font,
	}, 1)
	if got := te.SanitizedText(); got != "<not a tag>" {
		t.Errorf("SanitizedText() = %q, want %q", got, "<not a tag>")
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		start     int
		closing   bool
		wantName  string
		wantArgs  string
		wantOK    bool
	}{
		{"bare tag", "wave>", 0, false, "wave", "", true},
		{"tag with args", "color=red>", 0, false, "color", "red", true},
		{"closing tag", "/color>", 1, true, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.input)
			name, args, _, ok := parseTag(runes, tt.start, tt.closing)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if args != tt.wantArgs {
				t.Errorf("args = %q, want %q", args, tt.wantArgs)
			}
		})
	}
}
