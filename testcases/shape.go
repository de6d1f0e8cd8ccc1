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
package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple/raster"
)

var shapeCases = []Scenario{
	{
		Name:        "square",
		Ink:         rectangle(16, 16, 48, 48),
		Width:       64,
		Height:      64,
		Points:      60,
		MinDistance: 3,
		EdgeBias:    0.4,
		Seed:        10,
	},
	{
		Name:        "star",
		Ink:         fivePointStar(32, 32, 28),
		Width:       64,
		Height:      64,
		Points:      80,
		MinDistance: 2.5,
		EdgeBias:    0.4,
		Seed:        11,
	},
	{
		Name:        "triangle",
		Ink:         triangle(10, 50, 32, 10, 54, 50),
		Width:       64,
		Height:      64,
		Points:      60,
		MinDistance: 3,
		EdgeBias:    0.5,
		Seed:        12,
	},
	{
		Name:        "ring",
		Ink:         ring(32, 32, 26, 14),
		Width:       64,
		Height:      64,
		Points:      80,
		MinDistance: 2.5,
		EdgeBias:    0.4,
		Seed:        13,
	},
	{
		Name:        "all_edges",
		Ink:         rectangle(8, 8, 56, 56),
		Width:       64,
		Height:      64,
		Points:      40,
		MinDistance: 3,
		EdgeBias:    1,
		Seed:        14,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
// Under the nonzero rule the centre pentagon is filled as well.
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return raster.AppendRect(&path.Data{}, rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2})
}

// ring builds an annulus; the inner circle runs the other way round.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := raster.AppendCircle(&path.Data{}, pt(cx, cy), outer, false)
	return raster.AppendCircle(p, pt(cx, cy), inner, true)
}
