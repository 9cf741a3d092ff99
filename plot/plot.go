// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws graphs of mathematical objects, such as
// polynomials and intervals, on a canvas.
//
// A Plot maps a symmetric math-space box [-xMax, xMax] × [-yMax, yMax]
// on to the canvas viewport. Math y grows upward while viewport y
// grows downward, so the y scale is negative. Axes, arrowheads and
// tick marks are drawn when the Plot is created; each Add method
// draws on top of what is already there.
//
// For example, to plot y = x² to parabola.svg:
//
//	p, err := plot.Create("parabola", 10, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p.AddPolynomial(polynomial.Monomials{0, 0, 1}, color.Black)
//	if err := p.Close(); err != nil {
//		log.Fatal(err)
//	}
package plot

import (
	"image/color"
	"io"
	"strconv"

	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-mathplot/canvas"
	"github.com/aclements/go-mathplot/polynomial"
	"github.com/aclements/go-mathplot/scale"
	"github.com/aclements/go-mathplot/svg"
)

// Viewport is the canvas-space rectangle a Plot draws in.
type Viewport struct {
	Min, Max canvas.Point
}

// Config controls the fixed geometry of a Plot.
type Config struct {
	Viewport Viewport

	// Samples is the number of points AddPolynomial evaluates.
	// Curves are sampled uniformly with no adaptive refinement.
	Samples int

	// TickTarget is the approximate number of ticks across each
	// axis. Tick spacing is always a whole number of at least 1.
	TickTarget int
}

// DefaultConfig is the configuration used by New and Create.
var DefaultConfig = Config{
	Viewport:   Viewport{canvas.Point{X: -100, Y: -100}, canvas.Point{X: 100, Y: 100}},
	Samples:    500,
	TickTarget: 20,
}

// An Interval is a range [Min, Max] of x values.
type Interval struct {
	Min, Max float64
}

// Plot draws math objects on a canvas through a fixed affine
// transform.
type Plot struct {
	c   canvas.Canvas
	cfg Config

	min, max       canvas.Point
	xScale, yScale float64
}

var (
	blackLine     = canvas.Style{Width: 1, Stroke: color.Black}
	thinBlackLine = canvas.Style{Width: 0.5, Stroke: color.Black}
	blackFill     = canvas.Style{Stroke: color.Black, Fill: color.Black}
)

// Create opens an SVG file for a plot called name and draws the
// axes for math bounds ±xMax, ±yMax. See svg.FileName for how the
// file is named. The caller must Close the plot to finish the file.
func Create(name string, xMax, yMax float64) (*Plot, error) {
	vp := DefaultConfig.Viewport
	f, err := svg.Create(name, vp.Min, vp.Max)
	if err != nil {
		return nil, err
	}
	return New(f, xMax, yMax), nil
}

// New returns a Plot drawing on c with DefaultConfig. xMax and yMax
// must be positive.
func New(c canvas.Canvas, xMax, yMax float64) *Plot {
	return NewWithConfig(c, DefaultConfig, xMax, yMax)
}

// NewWithConfig is like New, but uses cfg. Zero Samples or
// TickTarget take their values from DefaultConfig.
func NewWithConfig(c canvas.Canvas, cfg Config, xMax, yMax float64) *Plot {
	if cfg.Samples <= 0 {
		cfg.Samples = DefaultConfig.Samples
	}
	if cfg.TickTarget <= 0 {
		cfg.TickTarget = DefaultConfig.TickTarget
	}
	vp := cfg.Viewport
	p := &Plot{
		c:      c,
		cfg:    cfg,
		min:    canvas.Point{X: -xMax, Y: -yMax},
		max:    canvas.Point{X: xMax, Y: yMax},
		xScale: (vp.Max.X - vp.Min.X) / (2 * xMax),
		yScale: -(vp.Max.Y - vp.Min.Y) / (2 * yMax),
	}
	p.drawAxes()
	p.drawXTicks()
	p.drawYTicks()
	return p
}

func (p *Plot) drawAxes() {
	vmin, vmax := p.cfg.Viewport.Min, p.cfg.Viewport.Max

	p.c.Line(canvas.Point{X: vmin.X + 5, Y: 0}, canvas.Point{X: vmax.X - 3, Y: 0}, blackLine)
	p.c.Line(canvas.Point{X: 0, Y: vmin.Y + 3}, canvas.Point{X: 0, Y: vmax.Y - 5}, blackLine)
	p.c.LinePath([]canvas.Point{{X: vmax.X, Y: 0}, {X: vmax.X - 5, Y: 1.5}, {X: vmax.X - 5, Y: -1.5}}, true, blackFill)
	p.c.LinePath([]canvas.Point{{X: 0, Y: vmin.Y}, {X: 1.5, Y: vmin.Y + 5}, {X: -1.5, Y: vmin.Y + 5}}, true, blackFill)
	p.c.Text(canvas.Point{X: vmax.X - 5, Y: 6}, "x", canvas.Large)
	p.c.Text(canvas.Point{X: -9, Y: vmin.Y + 5}, "y", canvas.Large)
}

func (p *Plot) drawXTicks() {
	ticks, _ := scale.NewLinear([]float64{p.min.X, p.max.X}).Ticks(p.cfg.TickTarget)
	for _, x := range ticks {
		xTick(p.c, x*p.xScale)
		p.c.Text(canvas.Point{X: x*p.xScale - 2, Y: 5}, tickLabel(x), canvas.Medium)
	}
}

func (p *Plot) drawYTicks() {
	ticks, _ := scale.NewLinear([]float64{p.min.Y, p.max.Y}).Ticks(p.cfg.TickTarget)
	for _, y := range ticks {
		yTick(p.c, y*p.yScale)
		p.c.Text(canvas.Point{X: -7, Y: y*p.yScale + 1}, tickLabel(y), canvas.Medium)
	}
}

// xTick draws a tick crossing the x axis at viewport x coordinate vx.
func xTick(c canvas.Canvas, vx float64) {
	c.Line(canvas.Point{X: vx, Y: 1.5}, canvas.Point{X: vx, Y: -1.5}, thinBlackLine)
}

// yTick draws a tick crossing the y axis at viewport y coordinate vy.
func yTick(c canvas.Canvas, vy float64) {
	c.Line(canvas.Point{X: 1.5, Y: vy}, canvas.Point{X: -1.5, Y: vy}, thinBlackLine)
}

// tickLabel formats a whole-number tick position.
func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MathToCanvas maps math-space point pt to viewport coordinates.
func (p *Plot) MathToCanvas(pt canvas.Point) canvas.Point {
	return canvas.Point{X: pt.X * p.xScale, Y: pt.Y * p.yScale}
}

// Bounds returns the corners of the math-space box.
func (p *Plot) Bounds() (min, max canvas.Point) {
	return p.min, p.max
}

// Scale returns the viewport units per math unit along each axis.
// The y scale is negative.
func (p *Plot) Scale() (x, y float64) {
	return p.xScale, p.yScale
}

// Canvas returns the canvas p draws on.
func (p *Plot) Canvas() canvas.Canvas {
	return p.c
}

// AddPolynomial draws poly over [min.X, max.X) as a single open path
// of exactly Config.Samples points. The curve is neither clipped nor
// smoothed.
func (p *Plot) AddPolynomial(poly polynomial.Monomials, c color.Color) {
	n := p.cfg.Samples
	xs := vec.Linspace(p.min.X, p.max.X, n+1)[:n]
	ys := vec.Map(poly.Func(), xs)

	graph := make([]canvas.Point, n)
	for i := range xs {
		graph[i] = p.MathToCanvas(canvas.Point{X: xs[i], Y: ys[i]})
	}
	p.c.LinePath(graph, false, canvas.Style{Width: 0.5, Stroke: c})
}

// AddInterval shades the x range iv over the full height of the
// viewport and marks both ends with a vertical line. Bounds are used
// as given, so iv.Min > iv.Max draws the same band with its edges
// swapped.
func (p *Plot) AddInterval(iv Interval, c color.Color) {
	vmin, vmax := p.cfg.Viewport.Min, p.cfg.Viewport.Max
	upperLeft := canvas.Point{X: iv.Min * p.xScale, Y: vmin.Y}
	upperRight := canvas.Point{X: iv.Max * p.xScale, Y: vmin.Y}
	lowerLeft := canvas.Point{X: iv.Min * p.xScale, Y: vmax.Y}
	lowerRight := canvas.Point{X: iv.Max * p.xScale, Y: vmax.Y}

	p.c.LinePath([]canvas.Point{lowerLeft, lowerRight, upperRight, upperLeft}, true,
		canvas.Style{Stroke: color.Black, Fill: c, Opacity: 0.2})

	p.c.Line(upperLeft, lowerLeft, canvas.Style{Width: 0.1, Stroke: c})
	p.c.Line(upperRight, lowerRight, canvas.Style{Width: 0.1, Stroke: c})
}

// Close finishes the plot's output if its canvas needs finishing,
// such as an SVG file, and returns any error from drawing or writing.
func (p *Plot) Close() error {
	if cl, ok := p.c.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
