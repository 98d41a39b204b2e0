package tree

import "github.com/viant/bluenoise/point"

// box is an axis-aligned search region on the x/y plane.
type box struct {
	minX, maxX float64
	minY, maxY float64
}

func around(x, y, radius float64) box {
	return box{minX: x - radius, maxX: x + radius, minY: y - radius, maxY: y + radius}
}

// split cuts the box at value along axis. The higher half starts at value
// even when value lies outside the box.
func (b box) split(axis point.Axis, value float64) (lesser, higher box) {
	lesser, higher = b, b
	if axis == point.AxisX {
		lesser.maxX = value
		higher.minX = value
		return lesser, higher
	}
	lesser.maxY = value
	higher.minY = value
	return lesser, higher
}

// valid reports whether the box has a non-empty interior on both axes.
func (b box) valid() bool {
	return b.minX < b.maxX && b.minY < b.maxY
}
