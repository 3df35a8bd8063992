// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Splash is the minimal launch logo: a walnut disc with a single
// letter over it, on a transparent background.
type Splash struct {

	// Disc and Kernel fill the outer and inner discs.
	Disc, Kernel color.NRGBA

	// Text is the letter drawn over the discs, in Ink.
	Text string
	Ink  color.NRGBA
}

// NewSplash returns a [Splash] style with the standard palette.
func NewSplash() *Splash {
	return &Splash{
		Disc:   color.NRGBA{139, 69, 19, 255},
		Kernel: color.NRGBA{160, 82, 45, 255},
		Text:   "W",
		Ink:    color.NRGBA{255, 255, 255, 255},
	}
}

func (sp *Splash) Name() string { return "splash" }

func (sp *Splash) Draw(dc *gg.Context, size int) {
	n := float64(size)

	dc.DrawEllipse(0.5*n, 0.5*n, 0.4*n, 0.4*n)
	dc.SetColor(sp.Disc)
	dc.Fill()

	dc.DrawEllipse(0.5*n, 0.5*n, 0.2*n, 0.2*n)
	dc.SetColor(sp.Kernel)
	dc.Fill()

	// the letter stays legible at tiny sizes
	points := math.Max(n/8, 12)
	dc.SetFontFace(Face(points))
	dc.SetColor(sp.Ink)
	dc.DrawStringAnchored(sp.Text, 0.5*n, 0.5*n, 0.5, 0.5)
}
