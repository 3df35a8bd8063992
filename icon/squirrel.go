// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// squirrelRef is the reference frame the squirrel composition is drawn
// in. All coordinates below are scaled by size / squirrelRef.
const squirrelRef = 32

// Squirrel is the mascot logo: a sitting squirrel holding an acorn,
// on a transparent background.
type Squirrel struct {

	// Coat fills the body, head, ears, and tail. Cream fills the belly
	// and inner ears. Dark outlines every shape and draws the face.
	Coat, Cream, Dark color.NRGBA

	// Acorn fills the acorn body; its cap is drawn in Dark.
	Acorn color.NRGBA
}

// NewSquirrel returns a [Squirrel] style with the standard palette.
func NewSquirrel() *Squirrel {
	return &Squirrel{
		Coat:  color.NRGBA{139, 69, 19, 255},
		Cream: color.NRGBA{255, 248, 220, 255},
		Dark:  color.NRGBA{101, 67, 33, 255},
		Acorn: color.NRGBA{160, 82, 45, 255},
	}
}

func (sq *Squirrel) Name() string { return "squirrel" }

func (sq *Squirrel) Draw(dc *gg.Context, size int) {
	s := float64(size) / squirrelRef
	lw := math.Max(1, s)

	// ellipse draws an ellipse inside the box at x, y spanning w x h,
	// filled and optionally outlined in Dark.
	ellipse := func(x, y, w, h float64, fill color.NRGBA, outline bool) {
		dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
		dc.SetColor(fill)
		if !outline {
			dc.Fill()
			return
		}
		dc.FillPreserve()
		dc.SetColor(sq.Dark)
		dc.SetLineWidth(lw)
		dc.Stroke()
	}
	arc := func(cx, cy float64) {
		dc.DrawEllipticalArc(cx, cy, s, s, 0, math.Pi)
		dc.Stroke()
	}

	// body and belly
	ellipse(6*s, 8*s, 20*s, 16*s, sq.Coat, true)
	ellipse(10*s, 12*s, 12*s, 8*s, sq.Cream, true)

	// head and ears
	ellipse(14*s, 6*s, 12*s, 12*s, sq.Coat, true)
	ellipse(15*s, 4*s, 4*s, 4*s, sq.Coat, true)
	ellipse(16*s, 5*s, 2*s, 2*s, sq.Cream, false)
	ellipse(21*s, 4*s, 4*s, 4*s, sq.Coat, true)
	ellipse(22*s, 5*s, 2*s, 2*s, sq.Cream, false)

	// closed eyes and smile
	dc.SetColor(sq.Dark)
	dc.SetLineWidth(lw)
	arc(18*s, 11*s)
	arc(22*s, 11*s)
	arc(20*s, 15*s)

	// tail
	dc.MoveTo(8*s, 12*s)
	dc.LineTo(2*s, 6*s)
	dc.LineTo(0, 2*s)
	dc.LineTo(2*s, 0)
	dc.LineTo(6*s, 2*s)
	dc.LineTo(8*s, 4*s)
	dc.ClosePath()
	dc.SetColor(sq.Coat)
	dc.FillPreserve()
	dc.SetColor(sq.Dark)
	dc.SetLineWidth(lw)
	dc.Stroke()

	// acorn and cap
	ellipse(18*s, 14*s, 6*s, 8*s, sq.Acorn, true)
	ellipse(19*s, 12*s, 4*s, 3*s, sq.Dark, true)
}
