// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster implements canvas.Canvas on an in-memory RGBA image
// that can be encoded as PNG.
//
// Strokes and fills are rasterized with rasterx and text is drawn
// with freetype using the Go Regular font.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/aclements/go-mathplot/canvas"
	"github.com/aclements/go-mathplot/scale"
)

// Canvas draws on to an image.RGBA. The viewport is stretched to
// cover the whole image.
type Canvas struct {
	img *image.RGBA

	xs, ys scale.Linear
	xo, yo scale.OutputScale
	unit   float64 // pixels per viewport unit

	dasher *rasterx.Dasher
	filler *rasterx.Filler

	fontCtx *freetype.Context

	err error
}

var _ canvas.Canvas = (*Canvas)(nil)

// New returns a white width×height canvas for a viewport spanning min
// to max.
func New(width, height int, min, max canvas.Point) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: bad image size %dx%d", width, height)
	}
	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: loading font: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := &Canvas{
		img:  img,
		xs:   scale.NewLinear([]float64{min.X, max.X}),
		ys:   scale.NewLinear([]float64{min.Y, max.Y}),
		xo:   scale.NewOutputScale(0, float64(width)),
		yo:   scale.NewOutputScale(0, float64(height)),
		unit: float64(width) / (max.X - min.X),
	}
	// Points outside the viewport map outside the image and are
	// clipped in pixel space when drawn.
	c.xo.Unclamp()
	c.yo.Unclamp()

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	c.dasher = rasterx.NewDasher(width, height, scanner)
	c.filler = rasterx.NewFiller(width, height, scanner)

	c.fontCtx = freetype.NewContext()
	c.fontCtx.SetDPI(72)
	c.fontCtx.SetFont(font)
	c.fontCtx.SetSrc(image.Black)
	c.fontCtx.SetDst(img)
	c.fontCtx.SetClip(img.Bounds())
	return c, nil
}

// Image returns the image being drawn on.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Pixel returns the image coordinates of viewport point p.
func (c *Canvas) Pixel(p canvas.Point) (x, y float64) {
	x, _ = scale.Map(c.xs, c.xo, p.X)
	y, _ = scale.Map(c.ys, c.yo, p.Y)
	return
}

func (c *Canvas) pixels(pts []canvas.Point) []pt {
	px := make([]pt, len(pts))
	for i, p := range pts {
		px[i].x, px[i].y = c.Pixel(p)
	}
	return px
}

// clip returns the image bounds grown by pad pixels.
func (c *Canvas) clip(pad float64) clipRect {
	b := c.img.Bounds()
	return newClipRect(b.Dx(), b.Dy(), pad)
}

func toFixed(p pt) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.x * 64), Y: fixed.Int26_6(p.y * 64)}
}

type pather interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	Stop(closeLoop bool)
}

func trace(p pather, pts []pt, closed bool) {
	p.Start(toFixed(pts[0]))
	for _, q := range pts[1:] {
		p.Line(toFixed(q))
	}
	p.Stop(closed)
}

func (c *Canvas) fill(pts []canvas.Point, st canvas.Style) {
	if st.Fill == nil {
		return
	}
	poly := c.clip(1).clipPolygon(c.pixels(pts))
	if len(poly) < 3 {
		return
	}
	c.filler.Clear()
	c.filler.Scanner.SetColor(rasterx.ApplyOpacity(st.Fill, st.EffectiveOpacity()))
	trace(c.filler, poly, true)
	c.filler.Draw()
}

// miterLimit is the stroke miter limit, as in SVG's stroke-miterlimit.
const miterLimit = 4

func (c *Canvas) stroke(pts []canvas.Point, closed bool, st canvas.Style) {
	if st.Width <= 0 {
		return
	}
	width := st.Width * c.unit
	// No join reaches more than miterLimit widths from its vertex.
	r := c.clip(miterLimit*width + 1)
	px := c.pixels(pts)
	runs := [][]pt{px}
	for _, p := range px {
		if !r.contains(p) {
			if closed {
				px = append(px, px[0])
				closed = false
			}
			runs = r.clipPolyline(px)
			break
		}
	}
	if len(runs) == 0 {
		return
	}

	c.dasher.Clear()
	c.dasher.SetStroke(fixed.Int26_6(width*64), miterLimit*64,
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	c.dasher.Scanner.SetColor(rasterx.ApplyOpacity(st.StrokeColor(), st.EffectiveOpacity()))
	for _, run := range runs {
		trace(c.dasher, run, closed)
	}
	c.dasher.Draw()
}

func (c *Canvas) Line(p1, p2 canvas.Point, st canvas.Style) {
	c.stroke([]canvas.Point{p1, p2}, false, st)
}

func (c *Canvas) LinePath(pts []canvas.Point, closed bool, st canvas.Style) {
	if len(pts) < 2 {
		return
	}
	c.fill(pts, st)
	c.stroke(pts, closed, st)
}

func (c *Canvas) Text(pos canvas.Point, text string, size canvas.TextSize) {
	if c.err != nil {
		return
	}
	var p pt
	p.x, p.y = c.Pixel(pos)
	b := c.img.Bounds()
	if !c.clip(float64(b.Dx() + b.Dy())).contains(p) {
		return
	}
	c.fontCtx.SetFontSize(size.Height() * c.unit)
	if _, err := c.fontCtx.DrawString(text, toFixed(p)); err != nil {
		c.err = fmt.Errorf("raster: drawing %q: %w", text, err)
	}
}

// Err returns the first error encountered while drawing.
func (c *Canvas) Err() error {
	return c.err
}

// Encode writes the image to w as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return png.Encode(w, c.img)
}
