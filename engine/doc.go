// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the bn_l2 and
// bn_l2sq SQL scalar functions over coordinate BLOBs.
package engine
