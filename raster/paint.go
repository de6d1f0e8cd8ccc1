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

package raster

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// circleKappa is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleKappa = 0.5522847498

// Blend returns an emit callback for the Fill methods which paints ink into
// dst, weighted by coverage.  Device coordinates are taken relative to
// dst.Bounds().Min.
func Blend(dst *image.Gray, ink uint8) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+xMin:]
		for i, c := range coverage {
			old := float32(row[i])
			v := old + (float32(ink)-old)*c
			row[i] = uint8(max(0, min(255, v+0.5)))
		}
	}
}

// ClipOf returns the clip rectangle covering all of img.
func ClipOf(img image.Image) rect.Rect {
	b := img.Bounds()
	return rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
}

// NewCanvas returns a width×height grayscale image filled with bg.
func NewCanvas(width, height int, bg uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	if bg != 0 {
		for i := range img.Pix {
			img.Pix[i] = bg
		}
	}
	return img
}

// AppendCircle appends a closed circle to p.  With clockwise set, the
// circle is traversed in the opposite direction, so that under the nonzero
// rule it cancels a counter-clockwise circle.
func AppendCircle(p *path.Data, center vec.Vec2, radius float64, clockwise bool) *path.Data {
	k := circleKappa * radius
	cx, cy := center.X, center.Y
	s := 1.0
	if clockwise {
		s = -1
	}

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, pt(cx, cy-radius))
	p.Cmds = append(p.Cmds, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo)
	p.Coords = append(p.Coords,
		pt(cx+s*k, cy-radius), pt(cx+s*radius, cy-k), pt(cx+s*radius, cy),
		pt(cx+s*radius, cy+k), pt(cx+s*k, cy+radius), pt(cx, cy+radius),
		pt(cx-s*k, cy+radius), pt(cx-s*radius, cy+k), pt(cx-s*radius, cy),
		pt(cx-s*radius, cy-k), pt(cx-s*k, cy-radius), pt(cx, cy-radius),
	)
	p.Cmds = append(p.Cmds, path.CmdClose)
	return p
}

// AppendRect appends an axis-parallel rectangle to p.
func AppendRect(p *path.Data, r rect.Rect) *path.Data {
	p.Cmds = append(p.Cmds, path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
	p.Coords = append(p.Coords,
		vec.Vec2{X: r.LLx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.URy},
		vec.Vec2{X: r.LLx, Y: r.URy},
	)
	return p
}

// DrawDots paints a filled disc of the given radius around every center.
func DrawDots(dst *image.Gray, centers []vec.Vec2, radius float64, ink uint8) {
	p := &path.Data{}
	for _, c := range centers {
		AppendCircle(p, c, radius, false)
	}
	r := NewRasteriser(ClipOf(dst))
	r.FillNonZero(p, Blend(dst, ink))
}

// DrawRings paints an annulus with the given outer radius and line width
// around every center.  Overlapping rings are combined with the even-odd
// rule.
func DrawRings(dst *image.Gray, centers []vec.Vec2, radius, width float64, ink uint8) {
	r := NewRasteriser(ClipOf(dst))
	emit := Blend(dst, ink)
	p := &path.Data{}
	inner := max(radius-width, 0)
	for _, c := range centers {
		p.Cmds = p.Cmds[:0]
		p.Coords = p.Coords[:0]
		AppendCircle(p, c, radius, false)
		if inner > 0 {
			AppendCircle(p, c, inner, true)
		}
		r.FillEvenOdd(p, emit)
	}
}

// Segment is a straight line between two points.
type Segment struct {
	A, B vec.Vec2
}

// DrawLines paints every segment as a band of the given width.
func DrawLines(dst *image.Gray, segs []Segment, width float64, ink uint8) {
	p := &path.Data{}
	h := width / 2
	for _, s := range segs {
		d := s.B.Sub(s.A)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := vec.Vec2{X: -d.Y / l * h, Y: d.X / l * h}
		p.Cmds = append(p.Cmds, path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
		p.Coords = append(p.Coords, s.A.Add(n), s.B.Add(n), s.B.Sub(n), s.A.Sub(n))
	}
	r := NewRasteriser(ClipOf(dst))
	r.FillNonZero(p, Blend(dst, ink))
}
