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
	"fmt"
	"image"
	"math"
	"slices"
	"sort"
)

// Epsilon is added to every cell of the weight maps built by this package,
// so that every pixel has a strictly positive probability.
const Epsilon = 1e-6

// maxIntensity is the intensity of a white pixel in an 8-bit raster.
const maxIntensity = 255.0

// WeightMap is a probability distribution over the pixels of a raster.
// The weights are stored in row-major order; the probability of a pixel
// is its weight divided by the total weight.
//
// A WeightMap is immutable once constructed and safe for concurrent use.
type WeightMap struct {
	width, height int

	weights []float64
	cdf     []float64 // cdf[i] = weights[0] + ... + weights[i]
	total   float64
}

// NewWeightMap returns a weight map for a width×height grid.  The weights
// are given in row-major order and are copied.
func NewWeightMap(width, height int, weights []float64) (*WeightMap, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{
			Param:  "raster size",
			Value:  fmt.Sprintf("%dx%d", width, height),
			Reason: "raster must have positive area",
		}
	}
	if len(weights) != width*height {
		return nil, fmt.Errorf("stipple: %d weights for a %dx%d grid: %w",
			len(weights), width, height, ErrDegenerateWeights)
	}
	return newWeightMap(width, height, slices.Clone(weights))
}

// newWeightMap takes ownership of weights.
func newWeightMap(width, height int, weights []float64) (*WeightMap, error) {
	cdf := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			x, y := i%width, i/width
			return nil, fmt.Errorf("stipple: weight %g at (%d, %d): %w",
				w, x, y, ErrDegenerateWeights)
		}
		total += w
		cdf[i] = total
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("stipple: total weight %g: %w", total, ErrDegenerateWeights)
	}

	return &WeightMap{
		width:   width,
		height:  height,
		weights: weights,
		cdf:     cdf,
		total:   total,
	}, nil
}

// Width returns the number of columns of the map.
func (wm *WeightMap) Width() int { return wm.width }

// Height returns the number of rows of the map.
func (wm *WeightMap) Height() int { return wm.height }

// Len returns the size of the flattened index space, width·height.
func (wm *WeightMap) Len() int { return len(wm.weights) }

// Total returns the sum of all weights.
func (wm *WeightMap) Total() float64 { return wm.total }

// Weight returns the unnormalised weight of pixel (x, y).
func (wm *WeightMap) Weight(x, y int) float64 {
	return wm.weights[y*wm.width+x]
}

// Probability returns the probability of drawing pixel (x, y).
func (wm *WeightMap) Probability(x, y int) float64 {
	return wm.weights[y*wm.width+x] / wm.total
}

// Index maps a uniform variate u ∈ [0, 1) to a flat pixel index,
// choosing index i with probability weight[i]/total.  Cells of weight
// zero are never returned.
func (wm *WeightMap) Index(u float64) int {
	target := u * wm.total
	n := len(wm.cdf)
	i := sort.Search(n, func(i int) bool { return wm.cdf[i] > target })
	if i == n {
		// only reachable through rounding for u close to 1
		i = n - 1
		for i > 0 && wm.weights[i] == 0 {
			i--
		}
	}
	return i
}

// At converts a flat index to the corresponding pixel.
func (wm *WeightMap) At(i int) Point {
	return Point{X: i % wm.width, Y: i / wm.width}
}

// BuildDensityWeights returns a weight map in which darker pixels are more
// likely: the weight of a pixel with intensity p is (255 - p) + Epsilon.
func BuildDensityWeights(img *image.Gray) (*WeightMap, error) {
	width, height, err := rasterSize(img)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, width*height)
	for y := range height {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x, p := range row {
			weights[y*width+x] = (maxIntensity - float64(p)) + Epsilon
		}
	}
	return newWeightMap(width, height, weights)
}

// BuildEdgeWeights returns a weight map in which pixels with a strong
// intensity gradient are more likely.  The Sobel gradient magnitude is
// scaled so that the strongest edge has weight 255, then Epsilon is added.
//
// A raster without any gradient yields the uniform distribution.
func BuildEdgeWeights(img *image.Gray) (*WeightMap, error) {
	width, height, err := rasterSize(img)
	if err != nil {
		return nil, err
	}

	weights := SobelMagnitude(img)
	maxMag := 0.0
	for _, m := range weights {
		maxMag = max(maxMag, m)
	}

	if maxMag == 0 {
		Logger().Debug("flat raster, edge weights are uniform",
			"width", width, "height", height)
		for i := range weights {
			weights[i] = Epsilon
		}
	} else {
		scale := maxIntensity / maxMag
		for i, m := range weights {
			weights[i] = m*scale + Epsilon
		}
	}
	return newWeightMap(width, height, weights)
}

// rasterSize returns the dimensions of img, or a *ConfigError if img is nil
// or has no pixels.
func rasterSize(img *image.Gray) (width, height int, err error) {
	if img == nil {
		return 0, 0, &ConfigError{Param: "raster", Value: nil, Reason: "raster is nil"}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, 0, &ConfigError{
			Param:  "raster size",
			Value:  fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			Reason: "raster must have positive area",
		}
	}
	return b.Dx(), b.Dy(), nil
}
