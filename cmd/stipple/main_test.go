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
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/stipple"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.text) != 2 {
		t.Errorf("default text %q is not two digits", cfg.text)
	}
	want := stipple.DefaultParams()
	want.AttemptFactor = stipple.DefaultAttemptFactor
	if cfg.params != want {
		t.Errorf("unexpected parameters %+v", cfg.params)
	}
	if cfg.width != 256 || cfg.height != 256 || cfg.size != 120 {
		t.Errorf("canvas %dx%d, size %g", cfg.width, cfg.height, cfg.size)
	}
	if cfg.seed < 0 {
		t.Errorf("negative seed %d", cfg.seed)
	}
	if cfg.prefix() != "time_dots_edge" {
		t.Errorf("prefix %q", cfg.prefix())
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	tests := [][]string{
		{"-points", "0"},
		{"-spacing", "-1"},
		{"-bias", "1.5"},
		{"-width", "0"},
		{"-size", "0"},
		{"-morph-to", "12", "-frames", "0"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}

	_, err := parseFlags([]string{"-points", "0"})
	if !errors.Is(err, stipple.ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg, err := parseFlags([]string{
		"-text", "7",
		"-width", "64", "-height", "64", "-size", "40",
		"-points", "20", "-spacing", "1", "-bias", "0.5",
		"-seed", "1",
		"-out", dir,
		"-pdf", "-edges", "-rings", "-kdtree",
		"-morph-to", "8", "-frames", "3",
		"-font", filepath.Join(dir, "missing.ttf"),
	})
	if err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), cfg, logger); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	for _, want := range []string{
		"time_dots_edge_7_20pts.png",
		"time_dots_edge_7_20pts.pdf",
		"time_dots_edge_7_20pts_edges.png",
		"time_dots_edge_7_20pts_morph_000.png",
		"time_dots_edge_7_20pts_morph_003.png",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("missing output %s, got %v", want, names)
		}
	}
}
