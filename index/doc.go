// Package index defines the spatial index abstraction used by the sampler to
// answer "how far is X from the nearest accepted point" queries.
// Implementations in this module include a linear-scan baseline (bruteforce)
// and a binary space-partitioning tree (kdtree).
package index
