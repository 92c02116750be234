package graphics

import (
	"testing"

	"github.com/pixelforge/pf2d/internal/gpu"
)

func TestBlendingMode_GpuMode(t *testing.T) {
	tests := []struct {
		name string
		mode BlendingMode
		want gpu.BlendingMode
	}{
		{"AlphaMix", AlphaMix, gpu.BlendAlphaMix},
		{"Additive", Additive, gpu.BlendAdditive},
		{"Subtractive", Subtractive, gpu.BlendSubtractive},
		{"Multiplicative", Multiplicative, gpu.BlendMultiplicative},
		{"unknown defaults to AlphaMix", BlendingMode(99), gpu.BlendAlphaMix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.gpuMode(); got != tt.want {
				t.Errorf("gpuMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
