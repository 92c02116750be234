package graphics

// HorTextAlign controls how a line's leftover width is distributed.
type HorTextAlign int

const (
	AlignLeft HorTextAlign = iota
	AlignCenter
	AlignRight
	AlignExpand
	AlignJustified
)

// dx0AndSpaces returns (dx0, resolved_space_width) for one line, per §4.4.
func (a HorTextAlign) dx0AndSpaces(extentsWidth, spaceWidth, charSpacing float32, line lineData) (float32, float32) {
	switch {
	case a == AlignLeft || (a == AlignJustified && !line.wordWrapped):
		return 0, spaceWidth
	case a == AlignCenter:
		return (extentsWidth - line.minWidth) * 0.5, spaceWidth
	case a == AlignRight:
		return extentsWidth - line.minWidth, spaceWidth
	default: // Expand, or Justified on a wrapped line
		if line.spaceCount == 0 {
			return 0, spaceWidth
		}
		finalWordlessWidth := extentsWidth - line.spacelessWidth
		spacing := float32(line.spaceCount) * charSpacing
		return 0, (finalWordlessWidth - spacing) / float32(line.spaceCount)
	}
}

// VerTextAlign controls vertical placement of the whole text block.
type VerTextAlign int

const (
	AlignTop VerTextAlign = iota
	AlignVCenter
	AlignBottom
)

func (a VerTextAlign) dy0(extentsHeight, lineHeight float32, lineCount int) float32 {
	switch a {
	case AlignVCenter:
		return (extentsHeight - lineHeight*float32(lineCount)) * 0.5
	case AlignBottom:
		return extentsHeight - lineHeight*float32(lineCount)
	default:
		return 0
	}
}
