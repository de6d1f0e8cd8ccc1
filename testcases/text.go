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

var textCases = []Scenario{
	{
		// the clock defaults: 100 points, spacing 7, edge bias 0.4
		Name:        "seconds_42",
		Text:        "42",
		Size:        120,
		Width:       256,
		Height:      256,
		Points:      100,
		MinDistance: 7,
		EdgeBias:    0.4,
		Seed:        20,
	},
	{
		Name:        "seconds_07_dense",
		Text:        "07",
		Size:        120,
		Width:       256,
		Height:      256,
		Points:      1000,
		MinDistance: 3,
		EdgeBias:    0.4,
		Seed:        21,
	},
	{
		// darkness only, without the edge phase
		Name:        "seconds_59_single_phase",
		Text:        "59",
		Size:        120,
		Width:       256,
		Height:      256,
		Points:      100,
		MinDistance: 7,
		Seed:        22,
	},
}
