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
	"testing"
)

func TestSobelMagnitude(t *testing.T) {
	img := stepImage(6, 3, 3)
	mag := SobelMagnitude(img)

	if len(mag) != 18 {
		t.Fatalf("got %d values, want 18", len(mag))
	}
	for y := range 3 {
		for x := range 6 {
			want := 0.0
			if x == 2 || x == 3 {
				// half of the kernel sees black, the other half white
				want = math.Sqrt(0.5)
			}
			if got := mag[y*6+x]; math.Abs(got-want) > 1e-12 {
				t.Errorf("(%d, %d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestSobelMagnitudeDiagonal(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			if x > y {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	mag := SobelMagnitude(img)

	// Far from the diagonal the raster is flat.
	if m := mag[7*8+0]; m != 0 {
		t.Errorf("flat corner: got %g, want 0", m)
	}
	if m := mag[0*8+7]; m != 0 {
		t.Errorf("flat corner: got %g, want 0", m)
	}
	// On the diagonal both components contribute.
	if m := mag[4*8+4]; !(m > 0) {
		t.Errorf("diagonal: got %g, want > 0", m)
	}
}

func TestSobelMagnitudeBorder(t *testing.T) {
	// A single white pixel in the corner, surrounded by black.  Clamping at
	// the border must not create a gradient on the far side.
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.Pix[0] = 255
	mag := SobelMagnitude(img)

	if !(mag[0] > 0) || !(mag[1] > 0) || !(mag[4] > 0) {
		t.Errorf("no gradient next to the white pixel: %v", mag[:5])
	}
	if mag[15] != 0 {
		t.Errorf("gradient in the far corner: %g", mag[15])
	}
}
