// Package store persists sampling runs in SQLite.
//
// A run records the sampler parameters and the accepted points in the order
// the sampler returned them. Coordinates are stored as 12-byte BLOBs that the
// engine package's bn_l2 and bn_l2sq SQL functions understand, so spacing
// statistics can be computed in SQL.
package store
