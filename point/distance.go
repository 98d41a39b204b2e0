package point

import (
	"math"

	"github.com/viant/vec/search"
)

// Metric computes a distance between two points.
type Metric[T any] func(a, b Point[T]) float64

// Distance returns the Euclidean distance between a and b.
func Distance[T any](a, b Point[T]) float64 {
	return float64(search.Float32s(a.coords[:]).EuclideanDistance(b.coords[:]))
}

// DistanceSquared returns the squared Euclidean distance between a and b. It
// is monotonic with Distance and skips the square root, so it is the metric
// of choice for comparisons.
func DistanceSquared[T any](a, b Point[T]) float64 {
	var sum float64
	for i := range a.coords {
		d := float64(a.coords[i]) - float64(b.coords[i])
		sum += d * d
	}
	return sum
}

// ManhattanDistance returns the L1 (city-block) distance between a and b.
func ManhattanDistance[T any](a, b Point[T]) float64 {
	var sum float64
	for i := range a.coords {
		sum += math.Abs(float64(a.coords[i]) - float64(b.coords[i]))
	}
	return sum
}
