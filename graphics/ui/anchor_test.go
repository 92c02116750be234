package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAnchor_LocalPivot(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		want   mgl32.Vec2
	}{
		{"LeftUp", LeftUp, mgl32.Vec2{0, 0}},
		{"Up", Up, mgl32.Vec2{0.5, 0}},
		{"RightUp", RightUp, mgl32.Vec2{1, 0}},
		{"Left", Left, mgl32.Vec2{0, 0.5}},
		{"Center", Center, mgl32.Vec2{0.5, 0.5}},
		{"Right", Right, mgl32.Vec2{1, 0.5}},
		{"LeftDown", LeftDown, mgl32.Vec2{0, 1}},
		{"Down", Down, mgl32.Vec2{0.5, 1}},
		{"RightDown", RightDown, mgl32.Vec2{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.anchor.localPivot(); got != tt.want {
				t.Errorf("localPivot() = %v, want %v", got, tt.want)
			}
		})
	}
}
