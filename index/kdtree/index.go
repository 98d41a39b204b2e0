package kdtree

import (
	"github.com/viant/bluenoise/index"
	"github.com/viant/bluenoise/internal/kd/tree"
	"github.com/viant/bluenoise/point"
)

// Index implements index.Index on top of a binary space-partitioning tree.
type Index[T any] struct {
	tree *tree.Tree[T]
}

type options struct {
	prune tree.PruneStrategy
}

// Option configures an Index.
type Option func(*options)

// WithPruning selects the subtree pruning strategy used by queries.
func WithPruning(s tree.PruneStrategy) Option {
	return func(o *options) { o.prune = s }
}

// New returns an empty index.
func New[T any](opts ...Option) *Index[T] {
	o := options{prune: tree.PruneGeometric}
	for _, opt := range opts {
		opt(&o)
	}
	return &Index[T]{tree: tree.New[T](o.prune)}
}

// Factory returns an index.Factory producing empty tree indexes.
func Factory[T any](opts ...Option) index.Factory[T] {
	return func() index.Index[T] { return New[T](opts...) }
}

func (i *Index[T]) Add(p point.Point[T]) { i.tree.Insert(p) }

func (i *Index[T]) AddRange(points []point.Point[T]) {
	for _, p := range points {
		i.tree.Insert(p)
	}
}

func (i *Index[T]) Clear() { i.tree.Reset() }

func (i *Index[T]) Len() int { return i.tree.Len() }

// Height returns the depth of the underlying tree.
func (i *Index[T]) Height() int { return i.tree.Height() }

// ToList returns the points in tree pre-order: node, lesser, higher.
func (i *Index[T]) ToList() []point.Point[T] {
	out := make([]point.Point[T], 0, i.tree.Len())
	i.tree.Walk(func(p point.Point[T]) { out = append(out, p) })
	return out
}

func (i *Index[T]) Distance(p point.Point[T]) (float64, error) {
	return i.nearest(p, tree.DistanceEuclidean)
}

func (i *Index[T]) DistanceSquared(p point.Point[T]) (float64, error) {
	return i.nearest(p, tree.DistanceSquared)
}

func (i *Index[T]) ManhattanDistance(p point.Point[T]) (float64, error) {
	return i.nearest(p, tree.DistanceManhattan)
}

// Nearest returns the closest contained point and its squared distance.
func (i *Index[T]) Nearest(p point.Point[T]) (point.Point[T], float64, error) {
	n, ok := i.tree.Nearest(p, tree.DistanceSquared)
	if !ok {
		return point.Point[T]{}, 0, index.ErrEmptyIndex
	}
	return n.Point, n.Distance, nil
}

func (i *Index[T]) nearest(p point.Point[T], fn tree.DistanceFunction) (float64, error) {
	n, ok := i.tree.Nearest(p, fn)
	if !ok {
		return 0, index.ErrEmptyIndex
	}
	return n.Distance, nil
}

var _ index.Index[struct{}] = (*Index[struct{}])(nil)
