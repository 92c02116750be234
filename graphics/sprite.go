package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/geom"
)

// Sprite is a texture handle plus the UV sub-rectangle it samples from —
// the unit this engine actually draws (draw_sprite, nine-patch corners).
type Sprite struct {
	Handle *TextureHandle
	UVRect geom.Rect
}

// Dims returns the sprite's pixel dimensions: the handle's full texture
// size scaled by the UV rect's fractional extent.
func (s Sprite) Dims() mgl32.Vec2 {
	w, h := s.Handle.Dims()
	size := s.UVRect.Size()
	return mgl32.Vec2{float32(w) * size[0], float32(h) * size[1]}
}

// SpriteAtlas slices a texture into a uniform grid of cells, producing a
// Sprite per cell on demand.
type SpriteAtlas struct {
	tex      *Texture2D
	cellSize mgl32.Vec2
}

// NewSpriteAtlas builds an atlas over tex with the given cell size in
// pixels.
func NewSpriteAtlas(tex *Texture2D, cellSize mgl32.Vec2) *SpriteAtlas {
	return &SpriteAtlas{tex: tex, cellSize: cellSize}
}

// Handle returns the atlas's backing texture.
func (a *SpriteAtlas) Handle() *Texture2D { return a.tex }

// CellSize returns the atlas's cell size in pixels.
func (a *SpriteAtlas) CellSize() (int, int) { return int(a.cellSize[0]), int(a.cellSize[1]) }

// Get returns the sprite for the cell at (col, row), zero-indexed from
// the texture's top-left.
func (a *SpriteAtlas) Get(col, row int) Sprite {
	w, h := a.tex.Dims()
	u0 := float32(col) * a.cellSize[0] / float32(w)
	v0 := float32(row) * a.cellSize[1] / float32(h)
	u1 := u0 + a.cellSize[0]/float32(w)
	v1 := v0 + a.cellSize[1]/float32(h)
	return Sprite{
		Handle: a.tex.Handle(),
		UVRect: geom.Rect{Start: mgl32.Vec2{u0, v0}, End: mgl32.Vec2{u1, v1}},
	}
}

// Normalize maps a pixel-space rect within one atlas cell to that cell's
// normalized sub-rect, for atlases whose sprites don't fill a full cell.
func (a *SpriteAtlas) Normalize(col, row int, rect geom.Rect) geom.Rect {
	cell := a.Get(col, row)
	size := a.cellSize
	start := cell.UVRect.Start.Add(mgl32.Vec2{rect.Start[0] / size[0] * (cell.UVRect.End[0] - cell.UVRect.Start[0]), rect.Start[1] / size[1] * (cell.UVRect.End[1] - cell.UVRect.Start[1])})
	end := cell.UVRect.Start.Add(mgl32.Vec2{rect.End[0] / size[0] * (cell.UVRect.End[0] - cell.UVRect.Start[0]), rect.End[1] / size[1] * (cell.UVRect.End[1] - cell.UVRect.Start[1])})
	return geom.Rect{Start: start, End: end}
}
