package graphics

import "github.com/pixelforge/pf2d/internal/gpu"

// BlendingMode selects how a submission's colors combine with whatever is
// already in the framebuffer.
type BlendingMode int

const (
	// AlphaMix is the default straight-alpha compositing mode.
	AlphaMix BlendingMode = iota
	// Additive sums source and destination.
	Additive
	// Subtractive subtracts source from destination. Destination alpha is
	// affected identically to color channels (open question, resolved:
	// see DESIGN.md).
	Subtractive
	// Multiplicative multiplies source and destination colors.
	Multiplicative
)

func (m BlendingMode) gpuMode() gpu.BlendingMode {
	switch m {
	case Additive:
		return gpu.BlendAdditive
	case Subtractive:
		return gpu.BlendSubtractive
	case Multiplicative:
		return gpu.BlendMultiplicative
	default:
		return gpu.BlendAlphaMix
	}
}
