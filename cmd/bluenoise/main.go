// Command bluenoise samples the pixels of an image with the best-candidate
// algorithm and writes the accepted pixels to a PNG.
//
// Usage:
//
//	bluenoise [flags] [image]
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/bluenoise/engine"
	"github.com/viant/bluenoise/index"
	"github.com/viant/bluenoise/logging"
	"github.com/viant/bluenoise/point"
	"github.com/viant/bluenoise/raster"
	"github.com/viant/bluenoise/rng"
	"github.com/viant/bluenoise/sampler"
	"github.com/viant/bluenoise/store"
)

// maxSpacingPoints caps the quadratic spacing query run after recording.
const maxSpacingPoints = 5000

type config struct {
	input      string
	output     string
	fraction   float64
	candidates int
	indexKind  string
	seed       uint64
	background string
	dbPath     string
	verbose    bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("bluenoise", flag.ContinueOnError)
	fs.Float64Var(&cfg.fraction, "fraction", 0.10, "fraction of pixels to keep, in (0, 1]")
	fs.IntVar(&cfg.candidates, "candidates", 10, "candidates drawn per accepted point")
	fs.StringVar(&cfg.indexKind, "index", string(index.KindAuto), "spatial index: auto, brute or kdtree")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for a reproducible run; 0 uses crypto/rand")
	fs.StringVar(&cfg.output, "out", "result.png", "output PNG path")
	fs.StringVar(&cfg.background, "background", "", "background colour name; empty keeps it transparent")
	fs.StringVar(&cfg.dbPath, "db", "", "SQLite database recording the run")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.input = "test.jpg"
	if fs.NArg() > 0 {
		cfg.input = fs.Arg(0)
	}
	if cfg.fraction <= 0 || cfg.fraction > 1 {
		return nil, fmt.Errorf("fraction must be in (0, 1], got %v", cfg.fraction)
	}
	return cfg, nil
}

// target returns how many points to keep out of n, at least one.
func (c *config) target(n int) int {
	m := int(c.fraction * float64(n))
	if m < 1 {
		m = 1
	}
	return m
}

func (c *config) source() (rng.Source, error) {
	if c.seed != 0 {
		return rng.NewPCGSource(c.seed), nil
	}
	return rng.NewCryptoSource()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewTextLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("bluenoise failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, logger *logging.Logger) error {
	img, err := raster.Load(cfg.input)
	if err != nil {
		return err
	}
	background, err := raster.Background(cfg.background)
	if err != nil {
		return err
	}
	points := raster.Points(img)
	target := cfg.target(len(points))

	factory, err := sampler.NewFactory[color.RGBA](index.Kind(cfg.indexKind), target)
	if err != nil {
		return err
	}
	src, err := cfg.source()
	if err != nil {
		return err
	}
	s, err := sampler.New[color.RGBA](src, factory, cfg.candidates, target, sampler.WithLogger(logger))
	if err != nil {
		return err
	}
	picked, err := s.SampleContext(ctx, points)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if err := raster.SavePNG(cfg.output, raster.Render(b.Dx(), b.Dy(), picked, background)); err != nil {
		return err
	}
	logger.Info("result written", "path", cfg.output, "points", len(picked), "of", len(points))

	if cfg.dbPath == "" {
		return nil
	}
	return record(ctx, cfg, logger, len(points), target, picked)
}

func record(ctx context.Context, cfg *config, logger *logging.Logger, inputSize, target int, picked []point.Point[color.RGBA]) error {
	db, err := engine.Open(cfg.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := store.NewStore[color.RGBA](ctx, db, store.RGBACodec{})
	if err != nil {
		return err
	}
	id, err := runs.SaveRun(ctx, store.Run{
		Source:     cfg.input,
		IndexKind:  cfg.indexKind,
		Candidates: cfg.candidates,
		Target:     target,
		InputSize:  inputSize,
	}, picked)
	if err != nil {
		return err
	}
	runLogger := logger.WithRun(id)
	if len(picked) > maxSpacingPoints {
		runLogger.Info("run recorded", "db", cfg.dbPath)
		return nil
	}
	spacing, err := runs.MinSpacing(ctx, id)
	if err != nil {
		return err
	}
	runLogger.Info("run recorded", "db", cfg.dbPath, "min_spacing", spacing)
	return nil
}
