// Package sampler selects a blue-noise subset of a point set using
// Mitchell's best-candidate algorithm.
//
// Each round draws a fixed number of candidates uniformly at random from
// the input and keeps the one farthest from every point accepted so far.
// Nearest-point queries go through an index.Index built from a caller
// supplied factory, so the linear-scan and tree indexes are interchangeable:
//
//	src, _ := rng.NewCryptoSource()
//	s, err := sampler.New[color.RGBA](src, kdtree.Factory[color.RGBA](), 10, 5000)
//	if err != nil {
//		return err
//	}
//	picked, err := s.Sample(points)
package sampler
