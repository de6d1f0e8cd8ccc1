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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// recorder logs the path construction calls made by drawPath.
type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("m %g %g", x, y))
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("l %g %g", x, y))
}

func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.ops = append(r.ops, fmt.Sprintf("c %g %g %g %g %g %g", x1, y1, x2, y2, x3, y3))
}

func (r *recorder) ClosePath() {
	r.ops = append(r.ops, "h")
}

func TestDrawPath(t *testing.T) {
	p := &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose},
		Coords: []vec.Vec2{
			{X: 0, Y: 0},
			{X: 3, Y: 0},
			{X: 6, Y: 0}, {X: 6, Y: 3},
			{X: 6, Y: 6}, {X: 0, Y: 6}, {X: 0, Y: 3},
		},
	}
	rec := &recorder{}
	drawPath(rec, p)

	want := []string{
		"m 0 0",
		"l 3 0",
		"c 5 0 6 1 6 3", // quadratic raised to cubic
		"c 6 6 0 6 0 3",
		"h",
	}
	if strings.Join(rec.ops, "; ") != strings.Join(want, "; ") {
		t.Errorf("got %q, want %q", rec.ops, want)
	}
}

func TestWritePDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.pdf")
	style := DefaultStyle()
	style.Rings = true
	if err := WritePDF(fname, testResult(), style); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("file does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
}
