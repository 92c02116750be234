// Package geom holds the small set of 2D geometric types the graphics
// engine shares across its batching core, render scopes and UI system. It
// deliberately does not duplicate general vector math — that lives in
// mgl32 — only the rectangle type layered on top of it.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle described by its opposite corners.
// Start is conventionally the lower/left corner and End the upper/right
// one, but no method here assumes Start <= End componentwise except
// FromPoints and Intersects.
type Rect struct {
	Start, End mgl32.Vec2
}

// Ident is the unit rectangle spanning [0,1]x[0,1], the default UV rect
// for a texture sampled over its full extent.
var Ident = Rect{Start: mgl32.Vec2{0, 0}, End: mgl32.Vec2{1, 1}}

// FromPoints builds the smallest axis-aligned rect containing both a and b.
func FromPoints(a, b mgl32.Vec2) Rect {
	return Rect{
		Start: mgl32.Vec2{min32(a[0], b[0]), min32(a[1], b[1])},
		End:   mgl32.Vec2{max32(a[0], b[0]), max32(a[1], b[1])},
	}
}

// FromCenterExtents builds a rect centered on center spanning +/- extents.
func FromCenterExtents(center, extents mgl32.Vec2) Rect {
	return Rect{Start: center.Sub(extents), End: center.Add(extents)}
}

// Size returns End - Start.
func (r Rect) Size() mgl32.Vec2 {
	return r.End.Sub(r.Start)
}

// Center returns the rect's midpoint.
func (r Rect) Center() mgl32.Vec2 {
	return r.Start.Add(r.End).Mul(0.5)
}

// Extents returns half of Size — the rect's half-width/half-height.
func (r Rect) Extents() mgl32.Vec2 {
	return r.Size().Mul(0.5)
}

// Lerp componentwise-interpolates between Start and End by pivot, where
// pivot (0,0) yields Start and (1,1) yields End. Used throughout the UI
// system to resolve an anchor's pivot into a position within a rect.
func (r Rect) Lerp(pivot mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		r.Start[0] + (r.End[0]-r.Start[0])*pivot[0],
		r.Start[1] + (r.End[1]-r.Start[1])*pivot[1],
	}
}

// LU, LD, RU, RD return the rect's four corners: left-up, left-down,
// right-up, right-down, where "up" is the lower Y value (screen-space
// convention used throughout the batching core).
func (r Rect) LU() mgl32.Vec2 { return mgl32.Vec2{r.Start[0], r.Start[1]} }
func (r Rect) LD() mgl32.Vec2 { return mgl32.Vec2{r.Start[0], r.End[1]} }
func (r Rect) RU() mgl32.Vec2 { return mgl32.Vec2{r.End[0], r.Start[1]} }
func (r Rect) RD() mgl32.Vec2 { return mgl32.Vec2{r.End[0], r.End[1]} }

// Intersects reports whether r and other overlap, assuming both are
// normalized (Start <= End componentwise).
func (r Rect) Intersects(other Rect) bool {
	return r.Start[0] <= other.End[0] && other.Start[0] <= r.End[0] &&
		r.Start[1] <= other.End[1] && other.Start[1] <= r.End[1]
}

// Normalize returns r with Start and End swapped per-axis as needed so
// that Start <= End componentwise.
func (r Rect) Normalize() Rect {
	return FromPoints(r.Start, r.End)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
