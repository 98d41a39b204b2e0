package sampler

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bluenoise/index"
	"github.com/viant/bluenoise/index/bruteforce"
	"github.com/viant/bluenoise/index/kdtree"
	"github.com/viant/bluenoise/point"
	"github.com/viant/bluenoise/rng"
)

// scripted returns a source yielding the given values in order.
func scripted(t *testing.T, values ...uint32) rng.Source {
	t.Helper()
	i := 0
	return rng.SourceFunc(func(bound uint32) uint32 {
		require.Less(t, i, len(values), "script exhausted")
		v := values[i]
		i++
		return v
	})
}

func grid(n int) []point.Point[int] {
	out := make([]point.Point[int], 0, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			out = append(out, point.New(len(out), float32(x), float32(y), 0))
		}
	}
	return out
}

func payloads(points []point.Point[int]) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = p.Payload()
	}
	return out
}

func TestNew_Preconditions(t *testing.T) {
	src := rng.NewPCGSource(1)
	factory := bruteforce.Factory[int]()

	testCases := []struct {
		description string
		src         rng.Source
		factory     index.Factory[int]
		candidates  int
		points      int
	}{
		{description: "nil source", factory: factory, candidates: 1, points: 1},
		{description: "nil factory", src: src, candidates: 1, points: 1},
		{description: "zero candidates", src: src, factory: factory, candidates: 0, points: 1},
		{description: "zero points", src: src, factory: factory, candidates: 1, points: 0},
		{description: "negative points", src: src, factory: factory, candidates: 3, points: -2},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			s, err := New[int](testCase.src, testCase.factory, testCase.candidates, testCase.points)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrPrecondition)
		})
	}
}

func TestSample_FastPath(t *testing.T) {
	testCases := []struct {
		description string
		input       []point.Point[int]
		candidates  int
		target      int
	}{
		{description: "empty input", input: nil, candidates: 1, target: 5},
		{description: "single point", input: grid(1), candidates: 1, target: 7},
		{description: "candidates equal input", input: grid(3), candidates: 9, target: 2},
		{description: "candidates exceed input", input: grid(2), candidates: 100, target: 1},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			src := rng.SourceFunc(func(uint32) uint32 {
				t.Fatal("fast path must not draw")
				return 0
			})
			factory := func() index.Index[int] {
				t.Fatal("fast path must not build an index")
				return nil
			}
			s, err := New[int](src, factory, testCase.candidates, testCase.target)
			require.NoError(t, err)
			out, err := s.Sample(testCase.input)
			require.NoError(t, err)
			assert.Len(t, out, len(testCase.input))
			assert.Equal(t, payloads(testCase.input), payloads(out))
		})
	}
}

func TestSample_FastPathReturnsCopy(t *testing.T) {
	input := grid(2)
	s, err := New[int](rng.NewPCGSource(1), bruteforce.Factory[int](), 4, 1)
	require.NoError(t, err)
	out, err := s.Sample(input)
	require.NoError(t, err)
	out[0] = point.New(-1, 0, 0, 0)
	assert.Equal(t, 0, input[0].Payload())
}

func TestSample_Scripted(t *testing.T) {
	input := []point.Point[string]{
		point.New("a", 0, 0, 0),
		point.New("b", 1, 0, 0),
		point.New("c", 2, 0, 0),
		point.New("d", 10, 0, 0),
		point.New("e", 5, 0, 0),
	}
	// first pick a, candidates b c e: e is farthest.
	src := scripted(t, 0, 1, 2, 4)
	s, err := New[string](src, bruteforce.Factory[string](), 3, 2)
	require.NoError(t, err)
	out, err := s.Sample(input)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Payload())
	assert.Equal(t, "e", out[1].Payload())
}

func TestSample_IdenticalPointsKeepFirstCandidate(t *testing.T) {
	input := make([]point.Point[int], 5)
	for i := range input {
		input[i] = point.New(i, 1, 1, 1)
	}
	src := scripted(t, 0, 3, 1, 2, 4)
	s, err := New[int](src, bruteforce.Factory[int](), 2, 3)
	require.NoError(t, err)
	out, err := s.Sample(input)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2}, payloads(out))
}

func TestSample_General(t *testing.T) {
	input := grid(20)
	before := payloads(input)
	byPayload := map[int]point.Point[int]{}
	for _, p := range input {
		byPayload[p.Payload()] = p
	}

	testCases := []struct {
		description string
		factory     index.Factory[int]
	}{
		{description: "brute force", factory: bruteforce.Factory[int]()},
		{description: "kd tree", factory: kdtree.Factory[int]()},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			var progress []int
			s, err := New[int](rng.NewPCGSource(42), testCase.factory, 10, 40,
				WithProgress(func(accepted, target int) {
					assert.Equal(t, 40, target)
					progress = append(progress, accepted)
				}))
			require.NoError(t, err)
			out, err := s.Sample(input)
			require.NoError(t, err)
			require.Len(t, out, 40)
			for _, p := range out {
				assert.Equal(t, byPayload[p.Payload()], p)
			}
			require.Len(t, progress, 40)
			for i, v := range progress {
				assert.Equal(t, i+1, v)
			}
			assert.Equal(t, before, payloads(input))
		})
	}
}

func TestSample_IndexesAgree(t *testing.T) {
	input := grid(16)
	brute, err := New[int](rng.NewPCGSource(7), bruteforce.Factory[int](), 8, 30)
	require.NoError(t, err)
	tree, err := New[int](rng.NewPCGSource(7), kdtree.Factory[int](), 8, 30)
	require.NoError(t, err)

	a, err := brute.Sample(input)
	require.NoError(t, err)
	b, err := tree.Sample(input)
	require.NoError(t, err)
	assert.ElementsMatch(t, payloads(a), payloads(b))
}

func TestSample_Spreads(t *testing.T) {
	input := grid(32)
	s, err := New[int](rng.NewPCGSource(3), kdtree.Factory[int](), 20, 16)
	require.NoError(t, err)
	out, err := s.Sample(input)
	require.NoError(t, err)

	closest := math.Inf(1)
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			closest = math.Min(closest, point.Distance(out[i], out[j]))
		}
	}
	assert.Greater(t, closest, 2.0)
}

func TestSample_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := New[int](rng.NewPCGSource(1), bruteforce.Factory[int](), 2, 10)
	require.NoError(t, err)
	out, err := s.SampleContext(ctx, grid(5))
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewFactory(t *testing.T) {
	testCases := []struct {
		description string
		kind        index.Kind
		target      int
		expectTree  bool
		expectErr   bool
	}{
		{description: "auto small", kind: index.KindAuto, target: 10},
		{description: "auto large", kind: index.KindAuto, target: AutoTreeThreshold, expectTree: true},
		{description: "brute", kind: index.KindBrute, target: 1 << 20},
		{description: "kdtree", kind: index.KindKDTree, target: 1, expectTree: true},
		{description: "unknown", kind: "quadtree", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			factory, err := NewFactory[int](testCase.kind, testCase.target)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isTree := factory().(*kdtree.Index[int])
			assert.Equal(t, testCase.expectTree, isTree)
		})
	}
}
