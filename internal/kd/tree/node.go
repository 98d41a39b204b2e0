package tree

import "github.com/viant/bluenoise/point"

// Node holds one point and owns up to two children. The split axis alternates
// between x and y with depth; z never splits.
type Node[T any] struct {
	point  point.Point[T]
	axis   point.Axis
	lesser *Node[T]
	higher *Node[T]
}

func newNode[T any](p point.Point[T], depth int) *Node[T] {
	return &Node[T]{point: p, axis: point.Axis(depth % 2)}
}

// childDepth returns a depth whose parity gives the axis of n's children.
func (n *Node[T]) childDepth() int { return int(n.axis) + 1 }

func (n *Node[T]) split() float64 { return coord(n.point, n.axis) }

func coord[T any](p point.Point[T], axis point.Axis) float64 {
	c := p.Coordinates()
	return float64(c[axis])
}
