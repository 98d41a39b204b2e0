package rng

// Source draws uniformly distributed unsigned integers.
type Source interface {
	// Next returns a value in [0, bound). A zero bound yields the full 32-bit
	// range.
	Next(bound uint32) uint32
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc func(bound uint32) uint32

func (f SourceFunc) Next(bound uint32) uint32 { return f(bound) }

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	n := uint32(len(items))
	return items[src.Next(n)%n]
}

// Shuffle permutes items in place with a Fisher-Yates shuffle and returns it.
func Shuffle[T any](src Source, items []T) []T {
	for i := len(items) - 1; i >= 1; i-- {
		j := src.Next(uint32(i + 1))
		items[i], items[j] = items[j], items[i]
	}
	return items
}

func reduce(v, bound uint32) uint32 {
	if bound == 0 {
		return v
	}
	return v % bound
}
