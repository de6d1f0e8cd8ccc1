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

// Package export writes stipples as PNG and PDF files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/kdtree"
	"seehuhn.de/go/stipple/raster"
)

// Style controls how a stipple is drawn.
type Style struct {
	// DotRadius is the radius of every dot, in pixels.
	DotRadius float64

	// Rings draws the edge-phase points as rings instead of discs.
	Rings bool

	// RingWidth is the line width of the rings.
	RingWidth float64

	// KDTree overlays the partition lines of a 2-d tree over all points.
	KDTree bool

	// LineWidth is the width of the partition lines.
	LineWidth float64
}

// DefaultStyle draws every point as a black disc of radius 1.
func DefaultStyle() *Style {
	return &Style{
		DotRadius: 1,
		RingWidth: 0.75,
		LineWidth: 0.5,
	}
}

// Render draws the points of res onto a new white canvas of the raster's
// size.  A nil style means DefaultStyle.
func Render(res *stipple.Result, style *Style) *image.Gray {
	if style == nil {
		style = DefaultStyle()
	}
	img := raster.NewCanvas(res.Width, res.Height, 255)

	if style.KDTree && len(res.Points) > 0 {
		tree := kdtree.Build(res.Points.Vecs())
		bounds := rect.Rect{URx: float64(res.Width), URy: float64(res.Height)}
		raster.DrawLines(img, tree.Partitions(bounds), style.LineWidth, 160)
	}

	if style.Rings {
		raster.DrawRings(img, res.EdgePoints().Vecs(), style.DotRadius+style.RingWidth/2, style.RingWidth, 0)
		raster.DrawDots(img, res.DensityPoints().Vecs(), style.DotRadius, 0)
	} else {
		raster.DrawDots(img, res.Points.Vecs(), style.DotRadius, 0)
	}
	return img
}

// RenderFrame draws a single morph frame as black dots on a white canvas.
func RenderFrame(width, height int, points []vec.Vec2, radius float64) *image.Gray {
	img := raster.NewCanvas(width, height, 255)
	raster.DrawDots(img, points, radius, 0)
	return img
}

// EdgeMap visualises the Sobel gradient magnitude of img.  The strongest
// edge is drawn black, pixels without gradient white.
func EdgeMap(img *image.Gray) *image.Gray {
	b := img.Bounds()
	res := raster.NewCanvas(b.Dx(), b.Dy(), 255)
	mag := stipple.SobelMagnitude(img)
	maxMag := 0.0
	for _, m := range mag {
		maxMag = max(maxMag, m)
	}
	if maxMag == 0 {
		return res
	}
	for i, m := range mag {
		res.Pix[i] = 255 - uint8(math.Round(255*m/maxMag))
	}
	return res
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to the named file.
func SavePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, img)
}

// Filename returns the output file name used for a stipple of the given
// text: "<prefix>_<text>_<n>pts.png", with ':' replaced by '-'.
func Filename(prefix, text string, n int) string {
	return fmt.Sprintf("%s_%s_%dpts.png", prefix, strings.ReplaceAll(text, ":", "-"), n)
}
