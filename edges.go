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
	"image"
	"math"
)

// SobelMagnitude returns the Sobel gradient magnitude of img in row-major
// order.  Intensities are scaled to [0, 1] and both 3×3 kernels are
// normalised by 1/4, so a black/white step gives a magnitude of
// sqrt(1/2) next to the step.  The magnitude is sqrt((gx² + gy²)/2).
//
// Pixels outside the raster are mirrored at the border, which for a 3×3
// kernel is the same as repeating the border pixel.
func SobelMagnitude(img *image.Gray) []float64 {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	res := make([]float64, width*height)
	if width <= 0 || height <= 0 {
		return res
	}

	at := func(x, y int) float64 {
		x = min(max(x, 0), width-1)
		y = min(max(y, 0), height-1)
		return float64(img.Pix[y*img.Stride+x]) / maxIntensity
	}

	for y := range height {
		for x := range width {
			tl, tc, tr := at(x-1, y-1), at(x, y-1), at(x+1, y-1)
			ml, mr := at(x-1, y), at(x+1, y)
			bl, bc, br := at(x-1, y+1), at(x, y+1), at(x+1, y+1)

			gx := ((tl + 2*ml + bl) - (tr + 2*mr + br)) / 4
			gy := ((tl + 2*tc + tr) - (bl + 2*bc + br)) / 4
			res[y*width+x] = math.Sqrt((gx*gx + gy*gy) / 2)
		}
	}
	return res
}
