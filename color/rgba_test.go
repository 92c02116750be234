package color

import "testing"

func TestRGBA32_Lerp(t *testing.T) {
	tests := []struct {
		name  string
		a, b  RGBA32
		t     float32
		want  RGBA32
	}{
		{"t=0 returns a", Black, White, 0, Black},
		{"t=1 returns b", Black, White, 1, White},
		{"t=0.5 midpoint", Black, White, 0.5, RGBA32{0.5, 0.5, 0.5, 1}},
		{"identical endpoints", Red, Red, 0.7, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Lerp(tt.b, tt.t)
			if got != tt.want {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestRGBA32_ToRGBA8_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA32
		want RGBA8
	}{
		{"black", Black, RGBA8{0, 0, 0, 255}},
		{"white", White, RGBA8{255, 255, 255, 255}},
		{"clear", Clear, RGBA8{0, 0, 0, 0}},
		{"below zero clamps to 0", RGBA32{-1, 0, 0, 1}, RGBA8{0, 0, 0, 255}},
		{"above one clamps to 255", RGBA32{2, 1, 1, 1}, RGBA8{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToRGBA8()
			if got != tt.want {
				t.Errorf("ToRGBA8() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA8_ToRGBA32(t *testing.T) {
	got := RGBA8{255, 0, 0, 255}.ToRGBA32()
	want := RGBA32{1, 0, 0, 1}
	if got != want {
		t.Errorf("ToRGBA32() = %v, want %v", got, want)
	}
}
