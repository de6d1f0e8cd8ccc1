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
// Command gallery stipples every scenario of the testcases package and
// writes the results as PNG and PDF files, for visual inspection.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/export"
	"seehuhn.de/go/stipple/testcases"
)

const outDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}
	stipple.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	style := export.DefaultStyle()
	style.Rings = true

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := generate(&sc, name, style); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(sc *testcases.Scenario, name string, style *export.Style) error {
	img, err := sc.Raster()
	if err != nil {
		return err
	}
	params := stipple.Params{
		Points:      sc.Points,
		MinDistance: sc.MinDistance,
		EdgeBias:    sc.EdgeBias,
	}
	res, err := stipple.Distribute(img, params, sc.Rand())
	if err != nil {
		return err
	}

	if err := export.SavePNG(filepath.Join(outDir, name+"_input.png"), img); err != nil {
		return err
	}
	if err := export.SavePNG(filepath.Join(outDir, name+".png"), export.Render(res, style)); err != nil {
		return err
	}
	return export.WritePDF(filepath.Join(outDir, name+".pdf"), res, style)
}
