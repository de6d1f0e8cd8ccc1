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
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned (wrapped in a *ConfigError) for
	// degenerate inputs: an empty raster, a non-positive spacing or point
	// count, or an edge bias outside [0, 1].
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDegenerateWeights is returned when a weight map would have no
	// probability mass, or contains negative or non-finite weights.
	ErrDegenerateWeights = errors.New("degenerate weights")
)

// ConfigError describes a single invalid parameter.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("stipple: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) report true.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
