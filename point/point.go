package point

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidAxis is returned when a coordinate is requested for an axis other
// than x, y or z.
var ErrInvalidAxis = errors.New("point: invalid axis")

// Axis selects one of the three coordinates of a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// Point is a position in 3D space carrying a payload of type T. A Point never
// changes after New returns it.
type Point[T any] struct {
	coords  [3]float32
	payload T
}

// New constructs a point for the given payload and coordinates.
func New[T any](payload T, x, y, z float32) Point[T] {
	return Point[T]{coords: [3]float32{x, y, z}, payload: payload}
}

func (p Point[T]) X() float32 { return p.coords[AxisX] }
func (p Point[T]) Y() float32 { return p.coords[AxisY] }
func (p Point[T]) Z() float32 { return p.coords[AxisZ] }

// Payload returns the opaque value attached to the point.
func (p Point[T]) Payload() T { return p.payload }

// Coordinates returns a copy of the (x, y, z) tuple.
func (p Point[T]) Coordinates() [3]float32 { return p.coords }

// Coordinate returns the coordinate on the given axis.
func (p Point[T]) Coordinate(axis Axis) (float32, error) {
	if axis < AxisX || axis > AxisZ {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAxis, int(axis))
	}
	return p.coords[axis], nil
}

func (p Point[T]) String() string {
	return "[" + strconv.FormatFloat(float64(p.coords[0]), 'f', -1, 32) +
		"," + strconv.FormatFloat(float64(p.coords[1]), 'f', -1, 32) +
		"," + strconv.FormatFloat(float64(p.coords[2]), 'f', -1, 32) + "]"
}
