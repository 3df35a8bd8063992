// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"runtime"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/walnutbook/icongen/base/errors"
	"github.com/walnutbook/icongen/base/fsx"
	"github.com/walnutbook/icongen/base/logx"
)

// FontPaths contains the filepaths in which fonts are stored for the current platform.
var FontPaths []string

func init() {
	switch runtime.GOOS {
	case "android":
		FontPaths = []string{"/system/fonts"}
	case "darwin", "ios":
		FontPaths = []string{"/System/Library/Fonts", "/System/Library/Fonts/Supplemental", "/Library/Fonts"}
	case "linux":
		// different distros have a different path
		FontPaths = []string{"/usr/share/fonts/truetype", "/usr/share/fonts/truetype/dejavu", "/usr/share/fonts/TTF"}
	case "windows":
		FontPaths = []string{"C:\\Windows\\Fonts"}
	}
}

// PreferredFonts are the font filenames searched for on [FontPaths],
// used for glyph rendering when found.
var PreferredFonts = []string{"Arial.ttf", "arial.ttf", "DejaVuSans.ttf", "Roboto-Regular.ttf"}

// FindSystemFont returns the filepath of the first of [PreferredFonts]
// present on [FontPaths], reporting whether one was found.
func FindSystemFont() (string, bool) {
	got := fsx.FindFilesOnPaths(FontPaths, PreferredFonts...)
	if len(got) == 0 {
		return "", false
	}
	return got[0], true
}

// SystemFace loads the font from [FindSystemFont] at the given point
// size, reporting whether it could be loaded.
func SystemFace(points float64) (font.Face, bool) {
	path, ok := FindSystemFont()
	if !ok {
		return nil, false
	}
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		logx.PrintlnWarn("icon: system font", path, "is unusable:", err.Error())
		return nil, false
	}
	return face, true
}

var (
	fallbackFont *truetype.Font
	fallbackOnce sync.Once
)

// Face returns a text face at the given point size, preferring the
// system font from [SystemFace] and falling back to the embedded Go
// Regular font. It always returns a usable face.
func Face(points float64) font.Face {
	if face, ok := SystemFace(points); ok {
		return face
	}
	fallbackOnce.Do(func() {
		fallbackFont = errors.Must1(truetype.Parse(goregular.TTF))
		logx.PrintlnDebug("icon: no system font found; using embedded Go Regular font")
	})
	return truetype.NewFace(fallbackFont, &truetype.Options{Size: points})
}
