package index

import (
	"errors"

	"github.com/viant/bluenoise/point"
)

// ErrEmptyIndex is returned by distance queries against an index holding no
// points.
var ErrEmptyIndex = errors.New("index: distance query on empty index")

// Kind names an index implementation.
type Kind string

const (
	KindAuto   Kind = "auto"
	KindBrute  Kind = "brute"
	KindKDTree Kind = "kdtree"
)

// Index is a mutable working set of accepted points answering
// nearest-neighbour distance queries.
type Index[T any] interface {
	// Add inserts a single point.
	Add(p point.Point[T])

	// AddRange inserts points in order.
	AddRange(points []point.Point[T])

	// Clear removes every point.
	Clear()

	// Len returns the number of contained points.
	Len() int

	// ToList materializes the contained points. Order is implementation
	// defined and not geometrically sorted.
	ToList() []point.Point[T]

	// Distance returns the Euclidean distance from p to the closest contained
	// point, or ErrEmptyIndex.
	Distance(p point.Point[T]) (float64, error)

	// DistanceSquared returns the squared Euclidean distance from p to the
	// closest contained point, or ErrEmptyIndex.
	DistanceSquared(p point.Point[T]) (float64, error)

	// ManhattanDistance returns the Manhattan distance from p to the closest
	// contained point, or ErrEmptyIndex.
	ManhattanDistance(p point.Point[T]) (float64, error)
}

// Factory constructs a fresh, empty Index.
type Factory[T any] func() Index[T]
