package main

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bluenoise/engine"
	"github.com/viant/bluenoise/logging"
	"github.com/viant/bluenoise/raster"
	"github.com/viant/bluenoise/store"
)

func TestParseFlags(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      config
		expectErr   bool
	}{
		{
			description: "defaults",
			expect:      config{input: "test.jpg", output: "result.png", fraction: 0.10, candidates: 10, indexKind: "auto"},
		},
		{
			description: "overrides",
			args:        []string{"-fraction", "0.5", "-candidates", "3", "-index", "kdtree", "-seed", "9", "-out", "o.png", "-v", "in.png"},
			expect:      config{input: "in.png", output: "o.png", fraction: 0.5, candidates: 3, indexKind: "kdtree", seed: 9, verbose: true},
		},
		{description: "zero fraction", args: []string{"-fraction", "0"}, expectErr: true},
		{description: "fraction above one", args: []string{"-fraction", "1.5"}, expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg, err := parseFlags(testCase.args)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, *cfg)
		})
	}
}

func TestConfigTarget(t *testing.T) {
	cfg := &config{fraction: 0.1}
	assert.Equal(t, 1, cfg.target(0))
	assert.Equal(t, 1, cfg.target(5))
	assert.Equal(t, 10, cfg.target(100))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 20), B: 1, A: 255})
		}
	}
	input := filepath.Join(dir, "in.png")
	require.NoError(t, raster.SavePNG(input, img))

	cfg := &config{
		input:      input,
		output:     filepath.Join(dir, "out.png"),
		fraction:   0.1,
		candidates: 5,
		indexKind:  "auto",
		seed:       11,
		background: "black",
		dbPath:     filepath.Join(dir, "runs.sqlite"),
	}
	require.NoError(t, run(context.Background(), cfg, logging.NoopLogger()))

	out, err := raster.Load(cfg.output)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), out.Bounds())

	matched := 0
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			if color.RGBAModel.Convert(out.At(x, y)) == img.RGBAAt(x, y) {
				matched++
			}
		}
	}
	assert.Equal(t, 20, matched)

	db, err := engine.Open(cfg.dbPath)
	require.NoError(t, err)
	defer db.Close()
	runs, err := store.NewStore[color.RGBA](context.Background(), db, store.RGBACodec{})
	require.NoError(t, err)
	list, err := runs.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 20, list[0].Target)
	assert.Equal(t, 200, list[0].InputSize)
}
