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

// Package testcases contains named stippling scenarios, used by the tests
// and by the gallery command.
package testcases

import (
	"fmt"
	"image"
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple/fonts"
	"seehuhn.de/go/stipple/raster"
)

// Scenario defines a single stippling run.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// The raster is a white canvas with Ink filled in black (nonzero rule),
	// then Text rendered with the default font, then Pixels applied.
	// All three are optional.
	Ink    *path.Data
	Text   string
	Size   float64 // font size for Text, in pixels
	Pixels []Pixel

	Points      int     // total number of points
	MinDistance float64 // minimum spacing in pixels
	EdgeBias    float64 // fraction of edge-phase points
	Seed        uint64  // generator seed
}

// Pixel sets a single raster value.
type Pixel struct {
	X, Y  int
	Value uint8
}

// Raster builds the input image of the scenario.
func (sc *Scenario) Raster() (*image.Gray, error) {
	img := raster.NewCanvas(sc.Width, sc.Height, 255)

	if sc.Ink != nil {
		r := raster.NewRasteriser(raster.ClipOf(img))
		r.FillNonZero(sc.Ink, raster.Blend(img, 0))
	}

	if sc.Text != "" {
		f, err := fonts.Default()
		if err != nil {
			return nil, err
		}
		txt, err := raster.Text(f, sc.Text, &raster.TextOptions{
			Width:      sc.Width,
			Height:     sc.Height,
			Size:       sc.Size,
			Background: 255,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sc.Name, err)
		}
		for i, v := range txt.Pix {
			img.Pix[i] = min(img.Pix[i], v)
		}
	}

	for _, p := range sc.Pixels {
		img.Pix[p.Y*img.Stride+p.X] = p.Value
	}
	return img, nil
}

// Rand returns a fresh generator seeded with sc.Seed.
func (sc *Scenario) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(sc.Seed, sc.Seed))
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
