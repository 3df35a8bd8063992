// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
)

// scale resizes the source image to size x size pixels. Square
// sources are resampled directly; non-square sources are fit inside
// the square, centered, with transparent padding.
func scale(src image.Image, size int) image.Image {
	b := src.Bounds()
	if b.Dx() == b.Dy() {
		return transform.Resize(src, size, size, transform.Lanczos)
	}
	return fitSquare(src, size)
}

// fitSquare scales src to fit inside a size x size transparent canvas,
// preserving its aspect ratio and centering it.
func fitSquare(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	var fw, fh int
	if w > h {
		fw, fh = size, h*size/w
	} else {
		fw, fh = w*size/h, size
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	r := image.Rect((size-fw)/2, (size-fh)/2, (size-fw)/2+fw, (size-fh)/2+fh)
	xdraw.CatmullRom.Scale(dst, r, src, b, xdraw.Over, nil)
	return dst
}
