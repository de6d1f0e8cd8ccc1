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

package export

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/raster"
)

// WritePDF writes the points of res as a single-page vector PDF.  One
// pixel of the raster becomes one PDF point; the page has the raster's
// size.  A nil style means DefaultStyle.
func WritePDF(fname string, res *stipple.Result, style *Style) error {
	if style == nil {
		style = DefaultStyle()
	}
	w, h := float64(res.Width), float64(res.Height)

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, raster rows run top to bottom.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(0))
	outline := &path.Data{}
	if style.Rings {
		for _, c := range res.EdgePoints().Vecs() {
			outer := style.DotRadius + style.RingWidth/2
			raster.AppendCircle(outline, c, outer, false)
			if inner := outer - style.RingWidth; inner > 0 {
				raster.AppendCircle(outline, c, inner, true)
			}
		}
		for _, c := range res.DensityPoints().Vecs() {
			raster.AppendCircle(outline, c, style.DotRadius, false)
		}
	} else {
		for _, c := range res.Points.Vecs() {
			raster.AppendCircle(outline, c, style.DotRadius, false)
		}
	}
	drawPath(page, outline)
	page.Fill()

	return page.Close()
}

// pdfPainter is the subset of the page drawing API used by drawPath.
type pdfPainter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath emits the path construction operators for p.  Quadratic
// segments are raised to cubic ones, since PDF has no quadratic curves.
func drawPath(page pdfPainter, p *path.Data) {
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			page.MoveTo(current.X, current.Y)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			page.LineTo(current.X, current.Y)
			k++
		case path.CmdQuadTo:
			c, q := p.Coords[k], p.Coords[k+1]
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3.0))
			c2 := q.Add(c.Sub(q).Mul(2.0 / 3.0))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			current = q
			k += 2
		case path.CmdCubeTo:
			c1, c2, q := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			current = q
			k += 3
		case path.CmdClose:
			page.ClosePath()
			current = start
		}
	}
}
