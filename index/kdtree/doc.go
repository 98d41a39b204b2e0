// Package kdtree provides a spatial index backed by an unbalanced binary
// space-partitioning tree that splits on alternating x and y axes.
//
// By default searches use geometric pruning, which visits almost every node.
// WithPruning(tree.PruneDistance) opts into distance-bounded pruning, which
// returns the same minimum while skipping far branches.
package kdtree
