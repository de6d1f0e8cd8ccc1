// seehuhn.de/go/stipple - weighted point distributions for stippling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Command stipple renders a short text as a cloud of dots.
//
// The text is drawn onto a white canvas, points are placed with a bias
// towards the edges and the dark areas of the glyphs, and the result is
// written as a PNG file.  Optionally the command also writes a PDF
// version, the edge map, and a sequence of frames which morph the dots
// into a stipple of a second text.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/export"
	"seehuhn.de/go/stipple/fonts"
	"seehuhn.de/go/stipple/kdtree"
	"seehuhn.de/go/stipple/raster"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "stipple:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	stipple.SetLogger(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "stipple:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, logger *slog.Logger) error {
	f, err := loadFont(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.seed), uint64(cfg.seed)))
	logger.Debug("starting", "text", cfg.text, "seed", cfg.seed)

	img, err := textRaster(f, cfg, cfg.text)
	if err != nil {
		return err
	}
	res, err := stipple.Distribute(img, cfg.params, rng)
	if err != nil {
		return err
	}

	name := filepath.Join(cfg.outDir, export.Filename(cfg.prefix(), cfg.text, len(res.Points)))
	style := export.DefaultStyle()
	style.Rings = cfg.rings
	style.KDTree = cfg.kdtree
	if err := export.SavePNG(name, export.Render(res, style)); err != nil {
		return err
	}
	logger.Info("saved", "file", name,
		"points", len(res.Points),
		"edge", len(res.Edge.Points),
		"density", len(res.Density.Points))

	base := strings.TrimSuffix(name, ".png")
	if cfg.pdf {
		if err := export.WritePDF(base+".pdf", res, style); err != nil {
			return err
		}
		logger.Info("saved", "file", base+".pdf")
	}
	if cfg.edges {
		if err := export.SavePNG(base+"_edges.png", export.EdgeMap(img)); err != nil {
			return err
		}
		logger.Info("saved", "file", base+"_edges.png")
	}

	if cfg.morphTo != "" {
		return morph(f, cfg, res, rng, base, logger)
	}
	return nil
}

// loadFont returns the font selected on the command line.  Problems with a
// font file or download are logged, and the default font is used instead.
func loadFont(ctx context.Context, cfg *config, logger *slog.Logger) (*sfnt.Font, error) {
	fname := cfg.fontFile
	if fname == "" && cfg.fontURL != "" {
		var err error
		fname, err = fonts.Fetch(ctx, nil, cfg.fontURL, cfg.fontCache)
		if err != nil {
			logger.Warn("font download failed, using default font", "error", err)
			return fonts.Default()
		}
	}
	if fname == "" {
		return fonts.Default()
	}

	f, err := fonts.LoadOrDefault(fname)
	if f == nil {
		return nil, err
	}
	if err != nil {
		logger.Warn("cannot load font, using default font", "error", err)
	}
	return f, nil
}

func textRaster(f *sfnt.Font, cfg *config, text string) (*image.Gray, error) {
	opt := raster.DefaultTextOptions()
	opt.Width = cfg.width
	opt.Height = cfg.height
	opt.Size = cfg.size
	return raster.Text(f, text, opt)
}

// morph stipples cfg.morphTo and writes the frames of the transition from
// res to the new stipple.
func morph(f *sfnt.Font, cfg *config, res *stipple.Result, rng *rand.Rand, base string, logger *slog.Logger) error {
	img, err := textRaster(f, cfg, cfg.morphTo)
	if err != nil {
		return err
	}
	target, err := stipple.Distribute(img, cfg.params, rng)
	if err != nil {
		return err
	}

	pairs, err := kdtree.Match(res.Points.Vecs(), target.Points.Vecs())
	if err != nil {
		return fmt.Errorf("morph %q to %q: %w", cfg.text, cfg.morphTo, err)
	}

	radius := export.DefaultStyle().DotRadius
	for i, frame := range kdtree.Morph(pairs, cfg.frames, nil) {
		fname := fmt.Sprintf("%s_morph_%03d.png", base, i)
		if err := export.SavePNG(fname, export.RenderFrame(cfg.width, cfg.height, frame, radius)); err != nil {
			return err
		}
	}
	logger.Info("saved morph", "frames", cfg.frames+1, "to", cfg.morphTo)
	return nil
}
