package graphics

import "testing"

func TestHorTextAlign_dx0AndSpaces(t *testing.T) {
	tests := []struct {
		name        string
		align       HorTextAlign
		line        lineData
		wantDx0     float32
		wantSpacing float32
	}{
		{
			name:        "left",
			align:       AlignLeft,
			line:        lineData{minWidth: 5},
			wantDx0:     0,
			wantSpacing: 2,
		},
		{
			name:        "justified unwrapped behaves like left",
			align:       AlignJustified,
			line:        lineData{minWidth: 5, wordWrapped: false},
			wantDx0:     0,
			wantSpacing: 2,
		},
		{
			name:        "center",
			align:       AlignCenter,
			line:        lineData{minWidth: 6},
			wantDx0:     2, // (10-6)/2
			wantSpacing: 2,
		},
		{
			name:        "right",
			align:       AlignRight,
			line:        lineData{minWidth: 6},
			wantDx0:     4, // 10-6
			wantSpacing: 2,
		},
		{
			name:        "expand with no spaces falls back to left",
			align:       AlignExpand,
			line:        lineData{minWidth: 5, spaceCount: 0},
			wantDx0:     0,
			wantSpacing: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx0, spacing := tt.align.dx0AndSpaces(10, 2, 0.5, tt.line)
			if dx0 != tt.wantDx0 {
				t.Errorf("dx0 = %v, want %v", dx0, tt.wantDx0)
			}
			if spacing != tt.wantSpacing {
				t.Errorf("spacing = %v, want %v", spacing, tt.wantSpacing)
			}
		})
	}
}

func TestHorTextAlign_Expand_DistributesRemainingWidth(t *testing.T) {
	line := lineData{spacelessWidth: 6, spaceCount: 2}
	dx0, spacing := AlignExpand.dx0AndSpaces(10, 2, 0.5, line)
	if dx0 != 0 {
		t.Errorf("dx0 = %v, want 0", dx0)
	}
	// finalWordlessWidth = 10-6 = 4, spacingTotal = 2*0.5 = 1, (4-1)/2 = 1.5
	if spacing != 1.5 {
		t.Errorf("spacing = %v, want 1.5", spacing)
	}
}

func TestHorTextAlign_Justified_WrappedLineExpands(t *testing.T) {
	line := lineData{spacelessWidth: 6, spaceCount: 2, wordWrapped: true}
	dx0, spacing := AlignJustified.dx0AndSpaces(10, 2, 0.5, line)
	if dx0 != 0 {
		t.Errorf("dx0 = %v, want 0", dx0)
	}
	if spacing != 1.5 {
		t.Errorf("spacing = %v, want 1.5", spacing)
	}
}

func TestVerTextAlign_dy0(t *testing.T) {
	tests := []struct {
		name   string
		align  VerTextAlign
		extent float32
		lh     float32
		lines  int
		want   float32
	}{
		{"top", AlignTop, 100, 10, 3, 0},
		{"vcenter", AlignVCenter, 100, 10, 3, 35},  // (100-30)/2
		{"bottom", AlignBottom, 100, 10, 3, 70},    // 100-30
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.align.dy0(tt.extent, tt.lh, tt.lines); got != tt.want {
				t.Errorf("dy0() = %v, want %v", got, tt.want)
			}
		})
	}
}
