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
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/stipple"
)

// config holds the settings of one run of the command.
type config struct {
	text      string
	fontFile  string
	fontURL   string
	fontCache string

	width, height int
	size          float64

	params stipple.Params
	seed   int64

	outDir  string
	pdf     bool
	rings   bool
	kdtree  bool
	edges   bool
	morphTo string
	frames  int
	verbose bool
}

// parseFlags reads the command line into a config.
func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	def := stipple.DefaultParams()

	fs := flag.NewFlagSet("stipple", flag.ContinueOnError)
	fs.StringVar(&cfg.text, "text", "", "text to stipple (default: the current second, two digits)")
	fs.StringVar(&cfg.fontFile, "font", "", "TrueType or OpenType font file")
	fs.StringVar(&cfg.fontURL, "font-url", "", "download the font from this URL, e.g. the Press Start 2P font")
	fs.StringVar(&cfg.fontCache, "font-cache", "", "where to keep a downloaded font")
	fs.IntVar(&cfg.width, "width", 256, "canvas width in pixels")
	fs.IntVar(&cfg.height, "height", 256, "canvas height in pixels")
	fs.Float64Var(&cfg.size, "size", 120, "font size in pixels")
	fs.IntVar(&cfg.params.Points, "points", def.Points, "number of points")
	fs.Float64Var(&cfg.params.MinDistance, "spacing", def.MinDistance, "minimum distance between points, in pixels")
	fs.Float64Var(&cfg.params.EdgeBias, "bias", def.EdgeBias, "fraction of points placed along edges")
	fs.IntVar(&cfg.params.AttemptFactor, "attempts", stipple.DefaultAttemptFactor, "draws allowed per requested point")
	fs.Int64Var(&cfg.seed, "seed", -1, "random seed (negative: seed from the clock)")
	fs.StringVar(&cfg.outDir, "out", ".", "output directory")
	fs.BoolVar(&cfg.pdf, "pdf", false, "also write a PDF file")
	fs.BoolVar(&cfg.rings, "rings", false, "draw edge points as rings")
	fs.BoolVar(&cfg.kdtree, "kdtree", false, "overlay the kd-tree partition")
	fs.BoolVar(&cfg.edges, "edges", false, "also write the edge map as PNG")
	fs.StringVar(&cfg.morphTo, "morph-to", "", "write frames morphing the stipple into one of this text")
	fs.IntVar(&cfg.frames, "frames", 30, "number of morph frames")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if cfg.text == "" {
		cfg.text = fmt.Sprintf("%02d", time.Now().Second())
	}
	if cfg.seed < 0 {
		cfg.seed = time.Now().UnixNano() & (1<<63 - 1)
	}
	if cfg.fontURL != "" && cfg.fontCache == "" {
		cfg.fontCache = filepath.Join(os.TempDir(), "stipple-fonts", filepath.Base(cfg.fontURL))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	var errs []error
	if cfg.width <= 0 || cfg.height <= 0 {
		errs = append(errs, &stipple.ConfigError{
			Param:  "canvas size",
			Value:  fmt.Sprintf("%dx%d", cfg.width, cfg.height),
			Reason: "must be positive",
		})
	}
	if !(cfg.size > 0) {
		errs = append(errs, &stipple.ConfigError{Param: "font size", Value: cfg.size, Reason: "must be positive"})
	}
	if cfg.morphTo != "" && cfg.frames < 1 {
		errs = append(errs, &stipple.ConfigError{Param: "frames", Value: cfg.frames, Reason: "must be at least 1"})
	}
	if err := cfg.params.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// prefix returns the start of the output file names.
func (cfg *config) prefix() string {
	if cfg.params.EdgeBias > 0 {
		return "time_dots_edge"
	}
	return "time_dots"
}
