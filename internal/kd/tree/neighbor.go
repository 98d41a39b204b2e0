package tree

import "github.com/viant/bluenoise/point"

// Neighbor describes the result of a nearest-distance search.
type Neighbor[T any] struct {
	Point    point.Point[T]
	Distance float64
	// Visited counts the nodes whose point was measured.
	Visited int
}
