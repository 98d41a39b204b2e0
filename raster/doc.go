// Package raster converts images to point sets and renders sampled points
// back into images.
package raster
