package sampler

import (
	"fmt"

	"github.com/viant/bluenoise/index"
	"github.com/viant/bluenoise/index/bruteforce"
	"github.com/viant/bluenoise/index/kdtree"
)

// AutoTreeThreshold is the target size from which KindAuto picks the tree index.
const AutoTreeThreshold = 1024

// NewFactory resolves an index kind to a factory. KindAuto picks the tree
// index once target reaches AutoTreeThreshold.
func NewFactory[T any](kind index.Kind, target int) (index.Factory[T], error) {
	switch kind {
	case index.KindAuto, "":
		if target >= AutoTreeThreshold {
			return kdtree.Factory[T](), nil
		}
		return bruteforce.Factory[T](), nil
	case index.KindBrute:
		return bruteforce.Factory[T](), nil
	case index.KindKDTree:
		return kdtree.Factory[T](), nil
	default:
		return nil, fmt.Errorf("sampler: unknown index kind %q", kind)
	}
}
