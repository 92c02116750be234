package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFromPoints(t *testing.T) {
	got := FromPoints(mgl32.Vec2{5, -2}, mgl32.Vec2{-1, 3})
	want := Rect{Start: mgl32.Vec2{-1, -2}, End: mgl32.Vec2{5, 3}}
	if got != want {
		t.Errorf("FromPoints() = %v, want %v", got, want)
	}
}

func TestFromCenterExtents(t *testing.T) {
	got := FromCenterExtents(mgl32.Vec2{10, 10}, mgl32.Vec2{2, 3})
	want := Rect{Start: mgl32.Vec2{8, 7}, End: mgl32.Vec2{12, 13}}
	if got != want {
		t.Errorf("FromCenterExtents() = %v, want %v", got, want)
	}
}

func TestRect_SizeCenterExtents(t *testing.T) {
	r := Rect{Start: mgl32.Vec2{0, 0}, End: mgl32.Vec2{10, 4}}
	if got := r.Size(); got != (mgl32.Vec2{10, 4}) {
		t.Errorf("Size() = %v, want {10 4}", got)
	}
	if got := r.Center(); got != (mgl32.Vec2{5, 2}) {
		t.Errorf("Center() = %v, want {5 2}", got)
	}
	if got := r.Extents(); got != (mgl32.Vec2{5, 2}) {
		t.Errorf("Extents() = %v, want {5 2}", got)
	}
}

func TestRect_Lerp(t *testing.T) {
	r := Rect{Start: mgl32.Vec2{0, 0}, End: mgl32.Vec2{10, 20}}
	tests := []struct {
		name  string
		pivot mgl32.Vec2
		want  mgl32.Vec2
	}{
		{"pivot 0,0 is Start", mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}},
		{"pivot 1,1 is End", mgl32.Vec2{1, 1}, mgl32.Vec2{10, 20}},
		{"pivot 0.5,0.5 is Center", mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Lerp(tt.pivot); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.pivot, got, tt.want)
			}
		})
	}
}

func TestRect_Corners(t *testing.T) {
	r := Rect{Start: mgl32.Vec2{1, 2}, End: mgl32.Vec2{3, 4}}
	if got := r.LU(); got != (mgl32.Vec2{1, 2}) {
		t.Errorf("LU() = %v, want {1 2}", got)
	}
	if got := r.LD(); got != (mgl32.Vec2{1, 4}) {
		t.Errorf("LD() = %v, want {1 4}", got)
	}
	if got := r.RU(); got != (mgl32.Vec2{3, 2}) {
		t.Errorf("RU() = %v, want {3 2}", got)
	}
	if got := r.RD(); got != (mgl32.Vec2{3, 4}) {
		t.Errorf("RD() = %v, want {3 4}", got)
	}
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{Start: mgl32.Vec2{0, 0}, End: mgl32.Vec2{4, 4}}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{Start: mgl32.Vec2{2, 2}, End: mgl32.Vec2{6, 6}}, true},
		{"touching edge", Rect{Start: mgl32.Vec2{4, 0}, End: mgl32.Vec2{8, 4}}, true},
		{"disjoint", Rect{Start: mgl32.Vec2{5, 5}, End: mgl32.Vec2{9, 9}}, false},
		{"contained", Rect{Start: mgl32.Vec2{1, 1}, End: mgl32.Vec2{2, 2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRect_Normalize(t *testing.T) {
	r := Rect{Start: mgl32.Vec2{5, -1}, End: mgl32.Vec2{-3, 2}}
	got := r.Normalize()
	want := Rect{Start: mgl32.Vec2{-3, -1}, End: mgl32.Vec2{5, 2}}
	if got != want {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}
