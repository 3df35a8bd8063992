// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icon procedurally renders the WalnutBook application logo
// at any pixel size. Each [Style] draws one composition, with all
// coordinates expressed relative to the canvas size so that every
// size depicts the same logo.
package icon

import (
	"fmt"
	"image"
	"maps"
	"slices"
	"strings"

	"github.com/fogleman/gg"
	"github.com/walnutbook/icongen/base/errors"
	"github.com/walnutbook/icongen/base/iox/imagex"
)

// Style draws one logo composition onto a drawing context.
// Implementations must be deterministic: the same style values and
// size always produce the same pixels.
type Style interface {

	// Name returns the name this style is registered under,
	// as used in configuration files and on the command line.
	Name() string

	// Draw renders the composition onto the given context,
	// which is size x size pixels.
	Draw(dc *gg.Context, size int)
}

// Render draws the given style on a new transparent canvas of
// size x size pixels and returns the finished image. It has no
// side effects beyond the returned image.
func Render(sty Style, size int) (*image.RGBA, error) {
	if sty == nil {
		return nil, errors.New("icon.Render: style is nil")
	}
	if size <= 0 {
		return nil, fmt.Errorf("icon.Render: size must be positive, got %d", size)
	}
	dc := gg.NewContext(size, size)
	sty.Draw(dc, size)
	return imagex.AsRGBA(dc.Image()), nil
}

var styles = map[string]func() Style{
	"walnut":   func() Style { return NewWalnut() },
	"splash":   func() Style { return NewSplash() },
	"squirrel": func() Style { return NewSquirrel() },
}

// StyleByName returns a new instance of the style registered under
// the given name, with its default palette.
func StyleByName(name string) (Style, error) {
	fn, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("icon: no style named %q (have %s)", name, strings.Join(StyleNames(), ", "))
	}
	return fn(), nil
}

// StyleNames returns the names of all available styles, sorted.
func StyleNames() []string {
	return slices.Sorted(maps.Keys(styles))
}

// Default returns the default style, the walnut ledger logo.
func Default() Style {
	return NewWalnut()
}
