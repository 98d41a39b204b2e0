// Package point defines the immutable 3D point with an opaque payload that
// flows through the sampler and the spatial indexes, together with the
// Euclidean, squared Euclidean and Manhattan distances between two points.
package point
