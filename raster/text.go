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
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TextOptions controls the appearance of rendered text.
type TextOptions struct {
	Width, Height int     // canvas size in pixels
	Size          float64 // font size in pixels per em
	Background    uint8
	Ink           uint8
}

// DefaultTextOptions returns the settings used to render the clock digits:
// black 120 pixel text on a white 256×256 canvas.
func DefaultTextOptions() *TextOptions {
	return &TextOptions{
		Width:      256,
		Height:     256,
		Size:       120,
		Background: 255,
		Ink:        0,
	}
}

// Text renders s with the font f into a new grayscale image.  The bounding
// box of the glyph outlines is centred on the canvas.  A nil opt means
// DefaultTextOptions.
func Text(f *sfnt.Font, s string, opt *TextOptions) (*image.Gray, error) {
	if opt == nil {
		opt = DefaultTextOptions()
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid canvas size %dx%d", opt.Width, opt.Height)
	}
	if !(opt.Size > 0) {
		return nil, fmt.Errorf("raster: invalid font size %g", opt.Size)
	}

	outline, err := TextPath(f, s, opt.Size)
	if err != nil {
		return nil, err
	}

	img := NewCanvas(opt.Width, opt.Height, opt.Background)
	lo, hi, ok := bounds(outline)
	if !ok {
		return img, nil
	}

	r := NewRasteriser(ClipOf(img))
	dx := (float64(opt.Width)-(hi.X-lo.X))/2 - lo.X
	dy := (float64(opt.Height)-(hi.Y-lo.Y))/2 - lo.Y
	r.CTM = matrix.Matrix{1, 0, 0, 1, dx, dy}
	r.FillNonZero(outline, Blend(img, opt.Ink))
	return img, nil
}

// TextPath lays out s on a single line, starting at the origin on the
// baseline, and returns the glyph outlines.  The y axis points down.
func TextPath(f *sfnt.Font, s string, size float64) (*path.Data, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)

	p := &path.Data{}
	var x fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, c := range s {
		gid, err := f.GlyphIndex(&buf, c)
		if err != nil {
			return nil, fmt.Errorf("raster: glyph for %q: %w", c, err)
		}
		if i > 0 {
			// fonts without a kern table are fine
			if k, err := f.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
				x += k
			}
		}

		segs, err := f.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("raster: outline for %q: %w", c, err)
		}
		appendSegments(p, segs, fixedToFloat(x))

		adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("raster: advance for %q: %w", c, err)
		}
		x += adv
		prev = gid
	}
	return p, nil
}

// appendSegments converts glyph segments, shifted right by dx, to path
// commands.
func appendSegments(p *path.Data, segs sfnt.Segments, dx float64) {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: fixedToFloat(q.X) + dx, Y: fixedToFloat(q.Y)}
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.Cmds = append(p.Cmds, path.CmdLineTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.Cmds = append(p.Cmds, path.CmdQuadTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.Cmds = append(p.Cmds, path.CmdCubeTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
}

// bounds returns the bounding box of all coordinates of p, including
// control points.
func bounds(p *path.Data) (lo, hi vec.Vec2, ok bool) {
	if len(p.Coords) == 0 {
		return lo, hi, false
	}
	lo, hi = p.Coords[0], p.Coords[0]
	for _, c := range p.Coords[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi, true
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
