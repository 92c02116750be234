package graphics

import "github.com/go-gl/mathgl/mgl32"

// CharVert is one of a character quad's four corners, post-effect.
type CharVert struct {
	Pos      mgl32.Vec2
	Color    Color
	UserData int32
}

// CharQuad is the four corners (LU, LD, RU, RD) of one rendered character.
type CharQuad struct {
	LU, LD, RU, RD CharVert
}

// RichTextContext carries the per-character data a RichTextFunction needs
// to decide how to transform its input quad.
type RichTextContext struct {
	Time  float32
	Ts    float32
	Index int
	Char  rune
}

// CharRenderData is the mutable per-character style state a
// RichTextFunction may adjust before the next effect in the stack runs.
type CharRenderData struct {
	Style TextStyle
}

// RichTextFunction implements one rich-text tag's effect on the characters
// it wraps.
type RichTextFunction interface {
	TagName() string
	// IsEvent reports whether the effect is an event effect. The text draw
	// path does not consult it: Draw runs once per wrapped character for
	// every effect.
	IsEvent() bool
	Draw(args []string, render *CharRenderData, inQuads []CharQuad, outQuads *[]CharQuad, ctx RichTextContext)
}

// rtCmd is one entry of the rich-text activation stack: Active=false marks
// a pop (closing tag) at CharIndex.
type rtCmd struct {
	Index     int // index into RichFunctions(), ignored when !Active
	Active    bool
	CharIndex int
}
