package tree

import (
	"math"
	"sync"

	"github.com/viant/bluenoise/point"
)

// PruneStrategy selects how a search decides which subtrees to skip.
type PruneStrategy int

const (
	// PruneGeometric narrows an axis-aligned region sized by the distance to
	// the root and only skips branches whose region collapses. Nearly the
	// whole tree is visited.
	PruneGeometric PruneStrategy = iota
	// PruneDistance skips a far branch once the splitting plane is farther
	// away than the best distance found so far.
	PruneDistance
)

func (s PruneStrategy) String() string {
	switch s {
	case PruneGeometric:
		return "geometric"
	case PruneDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// Tree is an unbalanced binary space-partitioning tree. Its shape depends
// only on insertion order.
type Tree[T any] struct {
	mu    sync.RWMutex
	root  *Node[T]
	size  int
	prune PruneStrategy
}

// New constructs an empty tree using the given pruning strategy.
func New[T any](prune PruneStrategy) *Tree[T] {
	return &Tree[T]{prune: prune}
}

// SetPruneStrategy switches the pruning strategy for subsequent searches.
func (t *Tree[T]) SetPruneStrategy(s PruneStrategy) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prune = s
}

// PruneStrategy returns the active pruning strategy.
func (t *Tree[T]) PruneStrategy() PruneStrategy {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.prune
}

// Insert descends from the root, going higher when the point's coordinate on
// the node's axis is strictly greater and lesser otherwise, and attaches the
// point as a new leaf.
func (t *Tree[T]) Insert(p point.Point[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.size++
	if t.root == nil {
		t.root = newNode(p, 0)
		return
	}
	node := t.root
	for {
		if coord(p, node.axis) > node.split() {
			if node.higher == nil {
				node.higher = newNode(p, node.childDepth())
				return
			}
			node = node.higher
			continue
		}
		if node.lesser == nil {
			node.lesser = newNode(p, node.childDepth())
			return
		}
		node = node.lesser
	}
}

// Reset drops every node.
func (t *Tree[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = nil
	t.size = 0
}

// Len returns the number of inserted points.
func (t *Tree[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var height func(n *Node[T]) int
	height = func(n *Node[T]) int {
		if n == nil {
			return 0
		}
		return 1 + max(height(n.lesser), height(n.higher))
	}
	return height(t.root)
}

// Walk visits points in pre-order: node, lesser subtree, higher subtree.
func (t *Tree[T]) Walk(fn func(p point.Point[T])) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.root == nil {
		return
	}
	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n.point)
		if n.higher != nil {
			stack = append(stack, n.higher)
		}
		if n.lesser != nil {
			stack = append(stack, n.lesser)
		}
	}
}

// Nearest finds the contained point closest to q under fn. It returns false
// when the tree is empty or fn is unknown.
func (t *Tree[T]) Nearest(q point.Point[T], fn DistanceFunction) (Neighbor[T], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := resolve[T](fn)
	if !ok || t.root == nil {
		return Neighbor[T]{}, false
	}
	best := Neighbor[T]{Distance: math.Inf(1)}
	if t.prune == PruneDistance {
		t.root.nearestBounded(q, m, &best)
		return best, true
	}
	region := around(coord(q, point.AxisX), coord(q, point.AxisY), m.radius(q, t.root.point))
	t.root.nearestWithin(q, region, m, &best)
	return best, true
}

func (n *Node[T]) measure(q point.Point[T], m metric[T], best *Neighbor[T]) {
	best.Visited++
	if d := m.dist(q, n.point); d < best.Distance {
		best.Distance = d
		best.Point = n.point
	}
}

// nearestWithin splits region at the node and descends into every child whose
// half of the region is still non-degenerate.
func (n *Node[T]) nearestWithin(q point.Point[T], region box, m metric[T], best *Neighbor[T]) {
	n.measure(q, m, best)
	lesser, higher := region.split(n.axis, n.split())
	if n.lesser != nil && lesser.valid() {
		n.lesser.nearestWithin(q, lesser, m, best)
	}
	if n.higher != nil && higher.valid() {
		n.higher.nearestWithin(q, higher, m, best)
	}
}

// nearestBounded descends the query's side first and visits the other side
// only when the splitting plane is closer than the best distance.
func (n *Node[T]) nearestBounded(q point.Point[T], m metric[T], best *Neighbor[T]) {
	n.measure(q, m, best)
	value, split := coord(q, n.axis), n.split()
	near, far := n.lesser, n.higher
	if value > split {
		near, far = n.higher, n.lesser
	}
	if near != nil {
		near.nearestBounded(q, m, best)
	}
	if far != nil && m.bound(math.Abs(value-split)) < best.Distance {
		far.nearestBounded(q, m, best)
	}
}
