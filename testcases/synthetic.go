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

var syntheticCases = []Scenario{
	{
		// Almost all probability mass sits on the single black pixel.
		Name:        "single_dark_pixel",
		Width:       10,
		Height:      10,
		Pixels:      []Pixel{{X: 5, Y: 5, Value: 0}},
		Points:      1,
		MinDistance: 1,
		Seed:        1,
	},
	{
		// Only one point fits; the remaining four are a shortfall.
		Name:        "impossible_spacing",
		Width:       10,
		Height:      10,
		Pixels:      []Pixel{{X: 2, Y: 7, Value: 0}},
		Points:      5,
		MinDistance: 1000,
		Seed:        2,
	},
	{
		// Distance exactly equal to the minimum is allowed, so every
		// pixel of the grid can be used.
		Name:        "tie_grid",
		Width:       3,
		Height:      3,
		Points:      9,
		MinDistance: 1,
		Seed:        3,
	},
	{
		Name:        "white_uniform",
		Width:       64,
		Height:      64,
		Points:      50,
		MinDistance: 3,
		Seed:        4,
	},
	{
		// The edge map of a blank raster is flat.
		Name:        "white_edges",
		Width:       64,
		Height:      64,
		Points:      20,
		MinDistance: 3,
		EdgeBias:    0.5,
		Seed:        5,
	},
	{
		Name:        "large_uniform",
		Width:       200,
		Height:      200,
		Points:      100,
		MinDistance: 5,
		Seed:        6,
	},
}
