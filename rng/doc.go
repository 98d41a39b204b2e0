// Package rng provides the random sources used by the sampler: a Source
// interface, helpers to pick a random element and to shuffle a slice in place,
// a buffered source backed by crypto/rand and a seeded deterministic source.
package rng
