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

// Package fonts obtains the font used to render the stippled text.
package fonts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// PressStart2P is the download location of a pixel font which suits the
// clock digits.
const PressStart2P = "https://github.com/google/fonts/raw/main/ofl/pressstart2p/PressStart2P-Regular.ttf"

// Default returns the Go Regular font, which is compiled into the binary.
func Default() (*sfnt.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: parsing Go Regular: %w", err)
	}
	return f, nil
}

// Load reads and parses a TrueType or OpenType font file.
func Load(fname string) (*sfnt.Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parsing %s: %w", fname, err)
	}
	return f, nil
}

// LoadOrDefault loads the named font.  If this fails, the default font is
// returned together with the load error, so that the caller can report it
// and carry on.
func LoadOrDefault(fname string) (*sfnt.Font, error) {
	f, loadErr := Load(fname)
	if loadErr == nil {
		return f, nil
	}
	f, err := Default()
	if err != nil {
		return nil, errors.Join(loadErr, err)
	}
	return f, loadErr
}

// Fetch makes sure that a copy of the font at url exists at cachePath,
// downloading it if necessary, and returns cachePath.  An existing file is
// never downloaded again.
func Fetch(ctx context.Context, client *http.Client, url, cachePath string) (string, error) {
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: downloading %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fonts: downloading %s: %s", url, resp.Status)
	}

	dir := filepath.Dir(cachePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(dir, ".font-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("fonts: downloading %s: %w", url, err)
	}
	if err := os.Rename(tmp.Name(), cachePath); err != nil {
		return "", err
	}
	return cachePath, nil
}
