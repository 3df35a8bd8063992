// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image/color"

	"github.com/fogleman/gg"
)

// walnutRef is the reference frame the walnut composition is drawn in.
// All coordinates below are scaled by size / walnutRef.
const walnutRef = 512

// Walnut is the primary WalnutBook logo: a walnut shell above an open
// ledger with a currency glyph, on a vertical brown gradient.
type Walnut struct {

	// Top and Bottom are the gradient colors at the top and bottom edges.
	Top, Bottom color.NRGBA

	// Shell and Kernel fill the outer and inner walnut ellipses,
	// with Rim outlining the shell.
	Shell, Kernel, Rim color.NRGBA

	// Book and BookRim fill and outline the ledger, Pages fills the
	// paper, and Rule draws the ruled lines on it.
	Book, BookRim, Pages, Rule color.NRGBA

	// Glyph is the text drawn on the ledger, in Ink.
	Glyph string
	Ink   color.NRGBA
}

// NewWalnut returns a [Walnut] style with the standard palette.
func NewWalnut() *Walnut {
	return &Walnut{
		Top:     color.NRGBA{139, 69, 19, 255},
		Bottom:  color.NRGBA{159, 99, 39, 255},
		Shell:   color.NRGBA{139, 69, 19, 255},
		Kernel:  color.NRGBA{160, 82, 45, 255},
		Rim:     color.NRGBA{101, 67, 33, 255},
		Book:    color.NRGBA{46, 139, 87, 255},
		BookRim: color.NRGBA{27, 77, 62, 255},
		Pages:   color.NRGBA{255, 255, 255, 230},
		Rule:    color.NRGBA{51, 51, 51, 255},
		Glyph:   "$",
		Ink:     color.NRGBA{46, 139, 87, 255},
	}
}

func (w *Walnut) Name() string { return "walnut" }

func (w *Walnut) Draw(dc *gg.Context, size int) {
	n := float64(size)
	s := n / walnutRef

	// gradient background, one row at a time
	for y := 0; y < size; y++ {
		t := float64(y) / n
		dc.SetRGBA255(lerp(w.Top.R, w.Bottom.R, t), lerp(w.Top.G, w.Bottom.G, t), lerp(w.Top.B, w.Bottom.B, t), 255)
		dc.DrawRectangle(0, float64(y), n, 1)
		dc.Fill()
	}

	// shell
	dc.DrawEllipse(256*s, 200*s, 120*s, 80*s)
	dc.SetColor(w.Shell)
	dc.FillPreserve()
	dc.SetColor(w.Rim)
	dc.SetLineWidth(3 * s)
	dc.Stroke()

	// kernel
	dc.DrawEllipse(256*s, 200*s, 100*s, 60*s)
	dc.SetColor(w.Kernel)
	dc.Fill()

	// ledger
	dc.DrawRoundedRectangle(200*s, 280*s, 112*s, 80*s, 8*s)
	dc.SetColor(w.Book)
	dc.FillPreserve()
	dc.SetColor(w.BookRim)
	dc.SetLineWidth(2 * s)
	dc.Stroke()

	// pages
	dc.DrawRoundedRectangle(210*s, 290*s, 92*s, 60*s, 4*s)
	dc.SetColor(w.Pages)
	dc.Fill()

	// ruled lines
	dc.SetColor(w.Rule)
	dc.SetLineWidth(s)
	for i := 0; i < 5; i++ {
		y := float64(300+10*i) * s
		dc.DrawLine(220*s, y, 290*s, y)
		dc.Stroke()
	}

	// currency glyph, centered on the ledger
	dc.SetFontFace(Face(20 * s))
	dc.SetColor(w.Ink)
	dc.DrawStringAnchored(w.Glyph, 256*s, 305*s, 0.5, 0.5)
}

// lerp linearly interpolates between two color channels.
func lerp(a, b uint8, t float64) int {
	return int(float64(a) + t*(float64(b)-float64(a)))
}
