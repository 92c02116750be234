// Package ui layers nested, hash-identified rectangles over a render
// scope: areas resolve anchored draw calls into the scope's pivot-based
// quad placement, and layouts partition a parent area into evenly-spaced
// child slots (§4.6).
package ui

import "github.com/go-gl/mathgl/mgl32"

// Anchor names one of the nine reference points of a rectangle a draw
// call positions itself against.
type Anchor int

const (
	LeftUp Anchor = iota
	Up
	RightUp
	Left
	Center
	Right
	LeftDown
	Down
	RightDown
)

// localPivot returns the [0,1]x[0,1] pivot an anchor resolves to.
func (a Anchor) localPivot() mgl32.Vec2 {
	switch a {
	case LeftUp:
		return mgl32.Vec2{0, 0}
	case Up:
		return mgl32.Vec2{0.5, 0}
	case RightUp:
		return mgl32.Vec2{1, 0}
	case Left:
		return mgl32.Vec2{0, 0.5}
	case Center:
		return mgl32.Vec2{0.5, 0.5}
	case Right:
		return mgl32.Vec2{1, 0.5}
	case LeftDown:
		return mgl32.Vec2{0, 1}
	case Down:
		return mgl32.Vec2{0.5, 1}
	case RightDown:
		return mgl32.Vec2{1, 1}
	default:
		return mgl32.Vec2{0.5, 0.5}
	}
}
