// Package bruteforce provides a spatial index that answers nearest-distance
// queries by scanning every contained point. It is the baseline the tree
// index is checked against.
package bruteforce
