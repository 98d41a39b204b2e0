package bruteforce

import (
	"math"

	"github.com/viant/bluenoise/index"
	"github.com/viant/bluenoise/point"
)

// Index is a linear-scan spatial index backed by a slice in insertion order.
type Index[T any] struct {
	points []point.Point[T]
}

// New returns an empty index with room for capacity points.
func New[T any](capacity int) *Index[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Index[T]{points: make([]point.Point[T], 0, capacity)}
}

// Factory returns an index.Factory producing empty brute-force indexes.
func Factory[T any]() index.Factory[T] {
	return func() index.Index[T] { return New[T](0) }
}

func (i *Index[T]) Add(p point.Point[T]) { i.points = append(i.points, p) }

func (i *Index[T]) AddRange(points []point.Point[T]) { i.points = append(i.points, points...) }

func (i *Index[T]) Clear() { i.points = i.points[:0] }

func (i *Index[T]) Len() int { return len(i.points) }

// ToList returns a copy of the points in insertion order.
func (i *Index[T]) ToList() []point.Point[T] {
	return append([]point.Point[T](nil), i.points...)
}

// Distance is the square root of DistanceSquared.
func (i *Index[T]) Distance(p point.Point[T]) (float64, error) {
	d, err := i.DistanceSquared(p)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d), nil
}

func (i *Index[T]) DistanceSquared(p point.Point[T]) (float64, error) {
	return i.nearest(p, point.DistanceSquared[T])
}

func (i *Index[T]) ManhattanDistance(p point.Point[T]) (float64, error) {
	return i.nearest(p, point.ManhattanDistance[T])
}

func (i *Index[T]) nearest(p point.Point[T], metric point.Metric[T]) (float64, error) {
	if len(i.points) == 0 {
		return 0, index.ErrEmptyIndex
	}
	best := math.Inf(1)
	for j := range i.points {
		if d := metric(p, i.points[j]); d < best {
			best = d
		}
	}
	return best, nil
}

var _ index.Index[struct{}] = (*Index[struct{}])(nil)
