/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package raster renders onto an in-memory RGBA image. Canvas implements
// vector.Surface with antialiased fills and strokes from rasterx.
package raster

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"gopainter/internal/vector"
)

// miterLimit for polygon strokes, in multiples of the stroke width.
const miterLimit = 4

// Canvas is a vector.Surface backed by an *image.RGBA.
type Canvas struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

var _ vector.Surface = (*Canvas)(nil)

// New allocates a w x h canvas, initially transparent.
func New(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sc := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Canvas{
		img:     img,
		scanner: sc,
		filler:  rasterx.NewFiller(w, h, sc),
		stroker: rasterx.NewStroker(w, h, sc),
	}
}

// Image returns the backing image. It is reused between frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (w, h int) { return c.img.Rect.Dx(), c.img.Rect.Dy() }

func (c *Canvas) Clear(col vector.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// DrawImage composites img with its top-left corner at x,y, without scaling.
func (c *Canvas) DrawImage(x, y float32, img image.Image) {
	b := img.Bounds()
	at := image.Pt(int(x+0.5), int(y+0.5))
	draw.Draw(c.img, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
}

func (c *Canvas) DrawEllipse(r vector.Rect, rotation float32, col vector.Color, width float32) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	ctr := r.Center()
	c.paint(col, width, false, func(a rasterx.Adder) {
		rasterx.AddEllipse(float64(ctr.X), float64(ctr.Y), float64(r.W/2), float64(r.H/2), float64(rotation), a)
	})
}

func (c *Canvas) DrawPolygon(pts []vector.Pt, col vector.Color, width float32) {
	if len(pts) < 2 {
		return
	}
	c.paint(col, width, false, func(a rasterx.Adder) { addPath(a, pts, true) })
}

func (c *Canvas) DrawRect(r vector.Rect, rotation float32, col vector.Color, width float32) {
	r = r.Canon()
	corners := r.Corners()
	c.DrawPolygon(vector.RotatePoints(corners[:], r.Center(), rotation), col, width)
}

func (c *Canvas) DrawLine(p1, p2 vector.Pt, col vector.Color, width float32) {
	if width <= 0 {
		width = 1
	}
	c.paint(col, width, true, func(a rasterx.Adder) { addPath(a, []vector.Pt{p1, p2}, false) })
}

// paint fills the path built by add when width is 0 and strokes it otherwise.
func (c *Canvas) paint(col vector.Color, width float32, roundCaps bool, add func(rasterx.Adder)) {
	if width <= 0 {
		c.filler.Clear()
		c.filler.SetColor(col.NRGBA())
		add(c.filler)
		c.filler.Draw()
		c.filler.Clear()
		return
	}
	capFn := rasterx.ButtCap
	if roundCaps {
		capFn = rasterx.RoundCap
	}
	c.stroker.Clear()
	c.stroker.SetStroke(toFixed(width), toFixed(miterLimit), capFn, capFn, rasterx.RoundGap, rasterx.Miter)
	c.stroker.SetColor(col.NRGBA())
	add(c.stroker)
	c.stroker.Draw()
	c.stroker.Clear()
}

func addPath(a rasterx.Adder, pts []vector.Pt, closed bool) {
	a.Start(rasterx.ToFixedP(float64(pts[0].X), float64(pts[0].Y)))
	for _, p := range pts[1:] {
		a.Line(rasterx.ToFixedP(float64(p.X), float64(p.Y)))
	}
	a.Stop(closed)
}

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
