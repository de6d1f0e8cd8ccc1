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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position.  X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// dist2 returns the squared Euclidean distance between p and q.
func (p Point) dist2(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Vec returns the pixel centre of p in device coordinates.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// PointSet is a list of points in the order they were accepted.
type PointSet []Point

// Vecs converts the points to pixel centres.
func (ps PointSet) Vecs() []vec.Vec2 {
	res := make([]vec.Vec2, len(ps))
	for i, p := range ps {
		res[i] = p.Vec()
	}
	return res
}

// MinDist2 returns the smallest squared distance between any two points
// of ps, or -1 if ps has fewer than two points.
func (ps PointSet) MinDist2() int {
	best := -1
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := ps[i].dist2(ps[j])
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

// GrayOf returns img as an 8-bit grayscale image.  If img already is an
// *image.Gray, it is returned unchanged.
func GrayOf(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			c := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			g.Pix[y*g.Stride+x] = c.Y
		}
	}
	return g
}
