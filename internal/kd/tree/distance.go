package tree

import (
	"math"

	"github.com/viant/bluenoise/point"
)

// DistanceFunction enumerates the metrics a tree search can run with.
type DistanceFunction string

const (
	DistanceEuclidean DistanceFunction = "euclidean"
	DistanceSquared   DistanceFunction = "squared"
	DistanceManhattan DistanceFunction = "manhattan"
)

// metric bundles what a search needs to know about a distance function.
type metric[T any] struct {
	// dist measures two points.
	dist point.Metric[T]
	// radius is the half-width of the initial geometric search region. Any
	// point closer than the root lies within radius on every axis.
	radius func(q, root point.Point[T]) float64
	// bound is a lower bound of dist for points separated by gap on one axis.
	bound func(gap float64) float64
}

func resolve[T any](fn DistanceFunction) (metric[T], bool) {
	switch fn {
	case DistanceEuclidean:
		return metric[T]{dist: point.Distance[T], radius: euclideanRadius[T], bound: identity}, true
	case DistanceSquared:
		return metric[T]{dist: point.DistanceSquared[T], radius: euclideanRadius[T], bound: square}, true
	case DistanceManhattan:
		return metric[T]{dist: point.ManhattanDistance[T], radius: point.ManhattanDistance[T], bound: identity}, true
	default:
		return metric[T]{}, false
	}
}

func euclideanRadius[T any](q, root point.Point[T]) float64 {
	return math.Sqrt(point.DistanceSquared(q, root))
}

func identity(gap float64) float64 { return gap }

func square(gap float64) float64 { return gap * gap }
