package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/viant/bluenoise/engine"
	"github.com/viant/bluenoise/point"
)

// ErrRunNotFound is returned when a run id has no stored record.
var ErrRunNotFound = errors.New("store: run not found")

// Run describes one sampling run.
type Run struct {
	// ID identifies the run. SaveRun generates one when empty.
	ID string
	// Source names the input, typically an image path.
	Source     string
	IndexKind  string
	Candidates int
	Target     int
	InputSize  int
	CreatedAt  time.Time
}

// Store persists runs and their accepted points. The database must be
// opened with engine.Open so the point SQL functions are available.
type Store[T any] struct {
	db    *sql.DB
	codec Codec[T]
}

// NewStore creates a Store and ensures its schema exists.
func NewStore[T any](ctx context.Context, db *sql.DB, codec Codec[T]) (*Store[T], error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if codec == nil {
		return nil, fmt.Errorf("store: codec is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: failed to create schema: %w", err)
	}
	return &Store[T]{db: db, codec: codec}, nil
}

// SaveRun stores a run and its points in order and returns the run id.
func (s *Store[T]) SaveRun(ctx context.Context, run Run, points []point.Point[T]) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, source, index_kind, candidates, target, input_size, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.IndexKind, run.Candidates, run.Target, run.InputSize, run.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return "", fmt.Errorf("store: failed to insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples(run_id, seq, coords, payload) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, p := range points {
		payload, err := s.codec.Encode(p.Payload())
		if err != nil {
			return "", fmt.Errorf("store: failed to encode payload %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, run.ID, i, engine.EncodeCoordinates(p.Coordinates()), payload); err != nil {
			return "", fmt.Errorf("store: failed to insert sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// LoadRun returns a run and its points in stored order.
func (s *Store[T]) LoadRun(ctx context.Context, id string) (Run, []point.Point[T], error) {
	run, err := s.run(ctx, id)
	if err != nil {
		return Run{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT coords, payload FROM samples WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return Run{}, nil, err
	}
	defer rows.Close()

	var out []point.Point[T]
	for rows.Next() {
		var coords, payload []byte
		if err := rows.Scan(&coords, &payload); err != nil {
			return Run{}, nil, err
		}
		c, err := engine.DecodeCoordinates(coords)
		if err != nil {
			return Run{}, nil, err
		}
		v, err := s.codec.Decode(payload)
		if err != nil {
			return Run{}, nil, fmt.Errorf("store: failed to decode payload: %w", err)
		}
		out = append(out, point.New(v, c[0], c[1], c[2]))
	}
	if err := rows.Err(); err != nil {
		return Run{}, nil, err
	}
	return run, out, nil
}

// Runs lists stored runs in insertion order.
func (s *Store[T]) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, source, index_kind, candidates, target, input_size, created_at FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteRun removes a run and its points.
func (s *Store[T]) DeleteRun(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: DeleteRun called with empty id")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE run_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("store: %s: %w", id, ErrRunNotFound)
	}
	return tx.Commit()
}

// MinSpacing returns the smallest Euclidean distance between two points of
// a run, or +Inf when the run holds fewer than two points.
func (s *Store[T]) MinSpacing(ctx context.Context, id string) (float64, error) {
	if _, err := s.run(ctx, id); err != nil {
		return 0, err
	}
	var spacing sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
SELECT MIN(bn_l2(a.coords, b.coords))
FROM samples a
JOIN samples b ON b.run_id = a.run_id AND b.seq > a.seq
WHERE a.run_id = ?`, id).Scan(&spacing)
	if err != nil {
		return 0, fmt.Errorf("store: failed to compute spacing for %s: %w", id, err)
	}
	if !spacing.Valid {
		return math.Inf(1), nil
	}
	return spacing.Float64, nil
}

func (s *Store[T]) run(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, source, index_kind, candidates, target, input_size, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("store: %s: %w", id, ErrRunNotFound)
	}
	return run, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var created string
	if err := row.Scan(&run.ID, &run.Source, &run.IndexKind, &run.Candidates, &run.Target, &run.InputSize, &created); err != nil {
		return Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("store: invalid created_at %q: %w", created, err)
	}
	run.CreatedAt = t
	return run, nil
}
