package ui

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// VerticalLayout partitions an area into count evenly-tall rows, each
// separated by the given gap, invoking f with the row's sub-area and
// index (§4.6).
func (a Area) VerticalLayout(name string, count int, separation float32, f func(Area, int)) {
	if count <= 0 {
		return
	}
	separationCount := count - 1
	if separationCount < 0 {
		separationCount = 0
	}
	full := a.Size()
	rowH := (full[1] - separation*float32(separationCount)) / float32(count)
	size := mgl32.Vec2{full[0], rowH}

	layoutID := fnv1(a.id, []byte(name))
	for i := 0; i < count; i++ {
		key := make([]byte, 8)
		binary.LittleEndian.PutUint64(key, uint64(i))
		rect := Rect{Offset: mgl32.Vec2{0, (size[1] + separation) * float32(i)}, Size: size}
		sub := a.SubArea(fnv1(layoutID, key), LeftUp, rect)
		f(sub, i)
	}
}
