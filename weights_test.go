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
package stipple

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestNewWeightMapErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		weights       []float64
		want          error
	}{
		{"zero_width", 0, 2, nil, ErrInvalidConfig},
		{"negative_height", 2, -1, nil, ErrInvalidConfig},
		{"length_mismatch", 2, 2, []float64{1, 2, 3}, ErrDegenerateWeights},
		{"all_zero", 2, 1, []float64{0, 0}, ErrDegenerateWeights},
		{"negative", 2, 1, []float64{1, -1}, ErrDegenerateWeights},
		{"nan", 2, 1, []float64{1, math.NaN()}, ErrDegenerateWeights},
		{"inf", 2, 1, []float64{math.Inf(1), 1}, ErrDegenerateWeights},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWeightMap(tc.width, tc.height, tc.weights)
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewWeightMapCopies(t *testing.T) {
	w := []float64{1, 2, 3, 4}
	wm, err := NewWeightMap(2, 2, w)
	if err != nil {
		t.Fatal(err)
	}
	w[0] = 100
	if got := wm.Weight(0, 0); got != 1 {
		t.Errorf("weight changed to %g after modifying the input", got)
	}
	if wm.Width() != 2 || wm.Height() != 2 || wm.Len() != 4 || wm.Total() != 10 {
		t.Errorf("unexpected shape %dx%d, len %d, total %g",
			wm.Width(), wm.Height(), wm.Len(), wm.Total())
	}
	if got := wm.Probability(1, 1); got != 0.4 {
		t.Errorf("probability of (1, 1): got %g, want 0.4", got)
	}
}

func TestIndex(t *testing.T) {
	wm, err := NewWeightMap(5, 1, []float64{0, 1, 0, 3, 0})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		u    float64
		want int
	}{
		{0, 1},
		{0.1, 1},
		{0.249, 1},
		{0.25, 3},
		{0.5, 3},
		{math.Nextafter(1, 0), 3},
	}
	for _, tc := range tests {
		if got := wm.Index(tc.u); got != tc.want {
			t.Errorf("Index(%g) = %d, want %d", tc.u, got, tc.want)
		}
	}
}

// TestIndexFrequencies checks that a fine grid of variates hits every cell
// in proportion to its weight.
func TestIndexFrequencies(t *testing.T) {
	weights := []float64{1, 0, 2, 5, 0, 0, 1, 1}
	wm, err := NewWeightMap(4, 2, weights)
	if err != nil {
		t.Fatal(err)
	}

	const n = 10000
	counts := make([]int, len(weights))
	for i := range n {
		u := (float64(i) + 0.5) / n
		counts[wm.Index(u)]++
	}
	for i, w := range weights {
		want := n * w / wm.Total()
		if math.Abs(float64(counts[i])-want) > 1 {
			t.Errorf("cell %d: %d hits, want %.0f", i, counts[i], want)
		}
	}
}

func TestAt(t *testing.T) {
	wm, err := NewWeightMap(3, 2, []float64{1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := wm.At(4); got != (Point{X: 1, Y: 1}) {
		t.Errorf("At(4) = %v, want (1, 1)", got)
	}
}

func TestBuildDensityWeights(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.Pix = []uint8{0, 128, 255}

	wm, err := BuildDensityWeights(img)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{255 + Epsilon, 127 + Epsilon, Epsilon}
	for x, w := range want {
		if got := wm.Weight(x, 0); got != w {
			t.Errorf("weight at x=%d: got %g, want %g", x, got, w)
		}
	}
}

func TestBuildDensityWeightsSubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Pix[2*img.Stride+2] = 0
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	wm, err := BuildDensityWeights(sub)
	if err != nil {
		t.Fatal(err)
	}
	if wm.Width() != 2 || wm.Height() != 2 {
		t.Fatalf("got size %dx%d, want 2x2", wm.Width(), wm.Height())
	}
	if got := wm.Weight(1, 1); got != 255+Epsilon {
		t.Errorf("weight of the dark pixel: got %g", got)
	}
	if got := wm.Weight(0, 0); got != Epsilon {
		t.Errorf("weight of a white pixel: got %g", got)
	}
}

func TestBuildWeightsInvalid(t *testing.T) {
	empty := image.NewGray(image.Rect(0, 0, 0, 5))
	for _, img := range []*image.Gray{nil, empty} {
		if _, err := BuildDensityWeights(img); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("density weights: got error %v", err)
		}
		if _, err := BuildEdgeWeights(img); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("edge weights: got error %v", err)
		}
	}
}

func TestBuildEdgeWeights(t *testing.T) {
	img := stepImage(6, 4, 3)

	wm, err := BuildEdgeWeights(img)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 6 {
			got := wm.Weight(x, y)
			if x == 2 || x == 3 {
				if got != 255+Epsilon {
					t.Errorf("edge pixel (%d, %d): got weight %g", x, y, got)
				}
			} else if got != Epsilon {
				t.Errorf("flat pixel (%d, %d): got weight %g", x, y, got)
			}
		}
	}
}

func TestBuildEdgeWeightsFlat(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 5, 5))
	wm, err := BuildEdgeWeights(img)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 5 {
		for x := range 5 {
			if p := wm.Probability(x, y); math.Abs(p-1.0/25) > 1e-12 {
				t.Errorf("pixel (%d, %d): probability %g, want 1/25", x, y, p)
			}
		}
	}
}

// stepImage returns a raster which is black left of column step and white
// from column step on.
func stepImage(width, height, step int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		for x := step; x < width; x++ {
			img.Pix[y*img.Stride+x] = 255
		}
	}
	return img
}
