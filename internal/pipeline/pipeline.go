// Package pipeline runs the extraction stages in order: sample, cluster,
// merge, render, write. One image per invocation, sequential throughout.
package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/diwalsh/color-palette-extractor/internal/export"
	"github.com/diwalsh/color-palette-extractor/internal/imageload"
	"github.com/diwalsh/color-palette-extractor/pkg/palette"
	"github.com/diwalsh/color-palette-extractor/pkg/swatch"
)

// Config collects everything one run needs. Zero values for OutputDir and
// Swatch fall back to the source directory and 100x100 blocks.
type Config struct {
	ImagePath string
	Colors    int
	Threshold float64
	Format    export.Format
	OutputDir string
	Seed      int64
	Swatch    swatch.Options
}

// Result reports the palette and where the artifacts were written.
type Result struct {
	Palette    palette.Palette
	SwatchPath string
	CodesPath  string
}

// Run executes the full pipeline. Parameters are validated up front so an
// invalid run aborts before any clustering work or file writes.
func Run(ctx context.Context, cfg Config, log *zerolog.Logger) (*Result, error) {
	if cfg.Colors <= 0 {
		return nil, errors.Wrapf(palette.ErrInvalidParameter, "color count must be positive, got %d", cfg.Colors)
	}
	if cfg.Threshold < 0 {
		return nil, errors.Wrapf(palette.ErrInvalidParameter, "threshold must not be negative, got %v", cfg.Threshold)
	}
	if cfg.Format == "" {
		cfg.Format = export.FormatHex
	}
	if cfg.Swatch == (swatch.Options{}) {
		cfg.Swatch = swatch.DefaultOptions()
	}

	img, err := imageload.Load(cfg.ImagePath)
	if err != nil {
		return nil, err
	}

	samples, err := imageload.Samples(img)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", cfg.ImagePath).Int("samples", len(samples)).Msg("sampled")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	centroids, err := palette.NewClusterer(cfg.Colors, cfg.Seed).Cluster(samples)
	if err != nil {
		return nil, err
	}

	final, err := palette.MergeByThreshold(centroids, cfg.Threshold)
	if err != nil {
		return nil, err
	}

	log.Info().Int("clusters", len(centroids)).Strs("colors", final.Hexes()).
		Float64("threshold", cfg.Threshold).Msg("extracted palette")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strip, err := swatch.Render(final, cfg.Swatch)
	if err != nil {
		return nil, err
	}

	writer := export.NewWriter(cfg.ImagePath, cfg.OutputDir)

	swatchPath, err := writer.WriteImage(strip)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", swatchPath).Msg("wrote swatches")

	codesPath, err := writer.WriteCodes(final, cfg.Format)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", codesPath).Msg("wrote color codes")

	return &Result{
		Palette:    final,
		SwatchPath: swatchPath,
		CodesPath:  codesPath,
	}, nil
}
