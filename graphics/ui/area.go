package ui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/color"
	"github.com/pixelforge/pf2d/geom"
	"github.com/pixelforge/pf2d/graphics"
)

// Area is one nested rectangle of UI space, hash-identified so that
// sub-areas created with the same key across frames resolve to the same
// logical widget regardless of draw order (§4.6).
type Area struct {
	rect  geom.Rect
	id    Hash
	scope *graphics.RenderScope
}

// Root builds the top-level area spanning the given resolution, backed by
// scope for all of its draw calls.
func Root(res [2]int, scope *graphics.RenderScope) Area {
	return Area{
		rect:  geom.Rect{Start: mgl32.Vec2{0, 0}, End: mgl32.Vec2{float32(res[0]), float32(res[1])}},
		id:    0,
		scope: scope,
	}
}

func (a Area) pivotPos(anchor Anchor, offset mgl32.Vec2) (mgl32.Vec2, mgl32.Vec2) {
	pivot := anchor.localPivot()
	return a.rect.Lerp(pivot).Add(offset), pivot
}

// DrawRect draws a flat-colored rect anchored within the area.
func (a Area) DrawRect(anchor Anchor, offset mgl32.Vec2, rot float32, extents mgl32.Vec2, col color.RGBA32) {
	pos, pivot := a.pivotPos(anchor, offset)
	a.scope.SetPivot(pivot)
	a.scope.DrawRect(graphics.RectSubmitCmd{
		Pos: pos, Rot: rot, Extents: extents,
		Tint: [4]graphics.Color{col, col, col, col},
		UVRect: geom.Ident,
	})
}

// DrawRectExt draws a rect with independently-colored corners.
func (a Area) DrawRectExt(anchor Anchor, offset mgl32.Vec2, rot float32, extents mgl32.Vec2, corners [4]color.RGBA32) {
	pos, pivot := a.pivotPos(anchor, offset)
	a.scope.SetPivot(pivot)
	a.scope.DrawRect(graphics.RectSubmitCmd{
		Pos: pos, Rot: rot, Extents: extents,
		Tint: corners, UVRect: geom.Ident,
	})
}

// DrawSprite draws a sprite anchored within the area, sized by its pixel
// dimensions scaled by scale.
func (a Area) DrawSprite(anchor Anchor, offset mgl32.Vec2, rot float32, scale mgl32.Vec2, sprite graphics.Sprite) {
	pos, pivot := a.pivotPos(anchor, offset)
	a.scope.SetPivot(pivot)
	dims := sprite.Dims()
	extents := mgl32.Vec2{dims[0] * scale[0], dims[1] * scale[1]}
	a.scope.DrawRect(graphics.RectSubmitCmd{
		Pos: pos, Rot: rot, Extents: extents,
		Tint:    [4]graphics.Color{color.White, color.White, color.White, color.White},
		Texture: sprite.Handle,
		UVRect:  sprite.UVRect,
	})
}

// DrawNinePatch draws a nine-patch-scaled sprite anchored within the area.
func (a Area) DrawNinePatch(anchor Anchor, offset mgl32.Vec2, rot float32, extents mgl32.Vec2, sprite graphics.Sprite) {
	a.DrawNinePatchExt(anchor, offset, rot, extents, color.White, sprite, 1)
}

// DrawNinePatchExt is DrawNinePatch with an explicit tint and corner scale.
func (a Area) DrawNinePatchExt(anchor Anchor, offset mgl32.Vec2, rot float32, extents mgl32.Vec2, tint color.RGBA32, sprite graphics.Sprite, cornerScaling float32) {
	pos, pivot := a.pivotPos(anchor, offset)
	a.scope.SetPivot(pivot)
	a.scope.DrawNinePatch(graphics.NinePatchSubmitCmd{
		Pos: pos, Rot: rot, Extents: extents,
		Tint: tint, Sprite: sprite, CornerScaling: cornerScaling,
	})
}

// DrawText draws text anchored within the area using the scope's current
// font settings.
func (a Area) DrawText(anchor Anchor, offset mgl32.Vec2, rot float32, extents mgl32.Vec2, text string, font graphics.Font) {
	pos, pivot := a.pivotPos(anchor, offset)
	a.scope.SetPivot(pivot)
	a.scope.DrawText(pos, rot, extents, text, font)
}

// DrawTextStateless draws text anchored within the area, ignoring the
// scope's stateful font settings in favor of cfg.
func (a Area) DrawTextStateless(anchor Anchor, cfg graphics.TextDrawCfg, text string) {
	pos, pivot := a.pivotPos(anchor, cfg.Origin)
	a.scope.SetPivot(pivot)
	cfg.Origin = pos
	a.scope.DrawTextStateless(cfg, text)
}

// Rect describes a sub-area's placement relative to its parent: an anchor
// plus an offset and explicit size, letting the sub-area sit anywhere
// within (or extend beyond) the parent's bounds.
type Rect struct {
	Offset mgl32.Vec2
	Size   mgl32.Vec2
}

func (r Rect) toRect(anchor Anchor, parent geom.Rect) geom.Rect {
	pivot := anchor.localPivot()
	start := parent.Lerp(pivot).Sub(mgl32.Vec2{r.Size[0] * pivot[0], r.Size[1] * pivot[1]}).Add(r.Offset)
	return geom.Rect{Start: start, End: start.Add(r.Size)}
}

// NamedSubArea creates a sub-area identified by name, unique among its
// siblings and stable across frames.
func (a Area) NamedSubArea(name string, anchor Anchor, rect Rect) Area {
	return a.UniqueSubArea([]byte(name), anchor, rect)
}

// UniqueSubArea creates a sub-area identified by an arbitrary byte key,
// unique among its siblings and stable across frames.
func (a Area) UniqueSubArea(key []byte, anchor Anchor, rect Rect) Area {
	return a.SubArea(fnv1(a.id, key), anchor, rect)
}

// SubArea creates a sub-area with an explicit, already-resolved identity.
func (a Area) SubArea(id Hash, anchor Anchor, rect Rect) Area {
	return Area{rect: rect.toRect(anchor, a.rect), id: id, scope: a.scope}
}

// Size returns the area's current width/height.
func (a Area) Size() mgl32.Vec2 { return a.rect.Size() }

// Center returns the area's midpoint.
func (a Area) Center() mgl32.Vec2 { return a.rect.Center() }

// RectBounds returns the area's rectangle in the root area's pixel
// coordinates (sub-area rects are already resolved against their parent).
func (a Area) RectBounds() geom.Rect { return a.rect }

// Scope returns the render scope this area draws into.
func (a Area) Scope() *graphics.RenderScope { return a.scope }

// FontSize/SetFontSize/FontColor/... forward the area's scope's stateful
// font settings, so UI code can read/tweak them without reaching into the
// scope directly.

func (a Area) FontSize() float32      { return a.scope.FontSize() }
func (a Area) SetFontSize(v float32)  { a.scope.SetFontSize(v) }
func (a Area) FontColor() color.RGBA32 { return a.scope.FontColor() }
func (a Area) SetFontColor(c color.RGBA32) { a.scope.SetFontColor(c) }
func (a Area) HorAlign() graphics.HorTextAlign     { return a.scope.HorAlign() }
func (a Area) SetHorAlign(v graphics.HorTextAlign) { a.scope.SetHorAlign(v) }
func (a Area) VerAlign() graphics.VerTextAlign     { return a.scope.VerAlign() }
func (a Area) SetVerAlign(v graphics.VerTextAlign) { a.scope.SetVerAlign(v) }
func (a Area) WordWrap() bool     { return a.scope.WordWrap() }
func (a Area) SetWordWrap(v bool) { a.scope.SetWordWrap(v) }
func (a Area) RichText() bool     { return a.scope.RichText() }
func (a Area) SetRichText(v bool) { a.scope.SetRichText(v) }
