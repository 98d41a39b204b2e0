package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/bluenoise/point"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterPointFunctions registers bn_l2 and bn_l2sq with the driver so
// they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterPointFunctions() error {
	registerOnce.Do(func() {
		if err := sqlite.RegisterDeterministicScalarFunction("bn_l2", 2, l2Impl); err != nil {
			registerErr = fmt.Errorf("engine: failed to register bn_l2: %w", err)
			return
		}
		if err := sqlite.RegisterDeterministicScalarFunction("bn_l2sq", 2, l2SquaredImpl); err != nil {
			registerErr = fmt.Errorf("engine: failed to register bn_l2sq: %w", err)
		}
	})
	return registerErr
}

func asPoint(arg driver.Value) (*point.Point[struct{}], error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		c, err := DecodeCoordinates(v)
		if err != nil {
			return nil, err
		}
		p := point.New(struct{}{}, c[0], c[1], c[2])
		return &p, nil
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for coordinates; want BLOB", arg)
	}
}

func pointArgs(name string, args []driver.Value) (a, b *point.Point[struct{}], err error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	if a, err = asPoint(args[0]); err != nil {
		return nil, nil, err
	}
	if b, err = asPoint(args[1]); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func l2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := pointArgs("bn_l2", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	return point.Distance(*a, *b), nil
}

func l2SquaredImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := pointArgs("bn_l2sq", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	return point.DistanceSquared(*a, *b), nil
}
