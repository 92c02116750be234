package ui

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// HorizontalLayout partitions an area into count evenly-wide columns,
// each separated by the given gap, invoking f with the column's sub-area
// and index (§4.6).
func (a Area) HorizontalLayout(name string, count int, separation float32, f func(Area, int)) {
	if count <= 0 {
		return
	}
	separationCount := count - 1
	if separationCount < 0 {
		separationCount = 0
	}
	full := a.Size()
	colW := (full[0] - separation*float32(separationCount)) / float32(count)
	size := mgl32.Vec2{colW, full[1]}

	layoutID := fnv1(a.id, []byte(name))
	for i := 0; i < count; i++ {
		key := make([]byte, 8)
		binary.LittleEndian.PutUint64(key, uint64(i))
		rect := Rect{Offset: mgl32.Vec2{(size[0] + separation) * float32(i), 0}, Size: size}
		sub := a.SubArea(fnv1(layoutID, key), LeftUp, rect)
		f(sub, i)
	}
}
