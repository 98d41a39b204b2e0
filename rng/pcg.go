package rng

import "math/rand/v2"

// PCGSource is a deterministic Source seeded from a single value. Two sources
// with the same seed produce the same sequence.
type PCGSource struct {
	r *rand.Rand
}

// NewPCGSource returns a deterministic source for seed.
func NewPCGSource(seed uint64) *PCGSource {
	return &PCGSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *PCGSource) Next(bound uint32) uint32 {
	if bound == 0 {
		return s.r.Uint32()
	}
	return s.r.Uint32N(bound)
}
