package sampler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viant/bluenoise/index"
	"github.com/viant/bluenoise/logging"
	"github.com/viant/bluenoise/point"
	"github.com/viant/bluenoise/rng"
)

// ErrPrecondition is returned when a Sampler is configured with invalid parameters.
var ErrPrecondition = errors.New("sampler: precondition violated")

// Sampler runs best-candidate selection.
type Sampler[T any] struct {
	src           rng.Source
	factory       index.Factory[T]
	maxCandidates int
	maxPoints     int
	logger        *logging.Logger
	progress      ProgressFunc
}

// New returns a Sampler drawing maxCandidates candidates per round until
// maxPoints points are accepted.
func New[T any](src rng.Source, factory index.Factory[T], maxCandidates, maxPoints int, opts ...Option) (*Sampler[T], error) {
	if src == nil {
		return nil, fmt.Errorf("sampler: random source is nil: %w", ErrPrecondition)
	}
	if factory == nil {
		return nil, fmt.Errorf("sampler: index factory is nil: %w", ErrPrecondition)
	}
	if maxCandidates < 1 {
		return nil, fmt.Errorf("sampler: maxCandidates must be >= 1, got %d: %w", maxCandidates, ErrPrecondition)
	}
	if maxPoints < 1 {
		return nil, fmt.Errorf("sampler: maxPoints must be >= 1, got %d: %w", maxPoints, ErrPrecondition)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NoopLogger()
	}
	return &Sampler[T]{
		src:           src,
		factory:       factory,
		maxCandidates: maxCandidates,
		maxPoints:     maxPoints,
		logger:        o.logger,
		progress:      o.progress,
	}, nil
}

// MaxCandidates returns the number of candidates drawn per round.
func (s *Sampler[T]) MaxCandidates() int { return s.maxCandidates }

// MaxPoints returns the number of points the sampler accepts.
func (s *Sampler[T]) MaxPoints() int { return s.maxPoints }

// Sample selects points from the input. The input slice is never modified.
func (s *Sampler[T]) Sample(points []point.Point[T]) ([]point.Point[T], error) {
	return s.SampleContext(context.Background(), points)
}

// SampleContext is Sample with cancellation checked between rounds.
//
// When maxCandidates covers the whole input every point is returned in
// input order. Otherwise exactly maxPoints points are returned in the
// order the index lists them.
func (s *Sampler[T]) SampleContext(ctx context.Context, points []point.Point[T]) ([]point.Point[T], error) {
	started := time.Now()
	s.logger.LogSampleStart(ctx, len(points), s.maxCandidates, s.maxPoints)

	if s.maxCandidates >= len(points) {
		out := make([]point.Point[T], len(points))
		copy(out, points)
		s.report(len(out), len(out))
		s.logger.LogSample(ctx, len(out), true, time.Since(started), nil)
		return out, nil
	}

	idx := s.factory()
	if idx == nil {
		err := fmt.Errorf("sampler: index factory returned nil: %w", ErrPrecondition)
		s.logger.LogSample(ctx, 0, false, time.Since(started), err)
		return nil, err
	}
	idx.Clear()
	idx.Add(rng.Pick(s.src, points))
	accepted := 1
	s.report(accepted, s.maxPoints)

	for accepted < s.maxPoints {
		if err := ctx.Err(); err != nil {
			err = fmt.Errorf("sampler: stopped after %d of %d points: %w", accepted, s.maxPoints, err)
			s.logger.LogSample(ctx, accepted, false, time.Since(started), err)
			return nil, err
		}
		best, err := s.bestCandidate(idx, points)
		if err != nil {
			s.logger.LogSample(ctx, accepted, false, time.Since(started), err)
			return nil, err
		}
		idx.Add(best)
		accepted++
		s.report(accepted, s.maxPoints)
	}

	out := idx.ToList()
	s.logger.LogSample(ctx, len(out), false, time.Since(started), nil)
	return out, nil
}

// bestCandidate draws maxCandidates points and returns the one farthest
// from the index. The first candidate wins ties.
func (s *Sampler[T]) bestCandidate(idx index.Index[T], points []point.Point[T]) (point.Point[T], error) {
	var best point.Point[T]
	bestDistance := -1.0
	for i := 0; i < s.maxCandidates; i++ {
		candidate := rng.Pick(s.src, points)
		d, err := idx.DistanceSquared(candidate)
		if err != nil {
			return best, fmt.Errorf("sampler: candidate query failed: %w", err)
		}
		if d > bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, nil
}

func (s *Sampler[T]) report(accepted, target int) {
	if s.progress != nil {
		s.progress(accepted, target)
	}
}
