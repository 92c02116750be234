package graphics

import "github.com/pixelforge/pf2d/color"

// Color is the engine-wide floating point color type.
type Color = color.RGBA32
