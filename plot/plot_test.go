// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-mathplot/canvas"
	"github.com/aclements/go-mathplot/polynomial"
	"github.com/aclements/go-mathplot/raster"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b))
}

func newRecorded(xMax, yMax float64) (*Plot, *canvas.Recorder) {
	rec := new(canvas.Recorder)
	return New(rec, xMax, yMax), rec
}

func TestMathToCanvas(t *testing.T) {
	for _, b := range []struct{ x, y float64 }{
		{10, 5}, {1, 1}, {0.25, 300}, {1000, 3.5},
	} {
		p, _ := newRecorded(b.x, b.y)
		if got := p.MathToCanvas(canvas.Point{X: b.x}); !near(got.X, 100) || got.Y != 0 {
			t.Errorf("bounds %v: x max maps to %v, want (100, 0)", b, got)
		}
		if got := p.MathToCanvas(canvas.Point{Y: b.y}); got.X != 0 || !near(got.Y, -100) {
			t.Errorf("bounds %v: y max maps to %v, want (0, -100)", b, got)
		}
		if got := p.MathToCanvas(canvas.Point{X: -b.x, Y: -b.y}); !near(got.X, -100) || !near(got.Y, 100) {
			t.Errorf("bounds %v: min corner maps to %v, want (-100, 100)", b, got)
		}
		if got := p.MathToCanvas(canvas.Point{}); got != (canvas.Point{}) {
			t.Errorf("bounds %v: origin maps to %v", b, got)
		}

		// Math y up is canvas y down.
		lo := p.MathToCanvas(canvas.Point{Y: -b.y / 2})
		hi := p.MathToCanvas(canvas.Point{Y: b.y / 3})
		if !(lo.Y > hi.Y) {
			t.Errorf("bounds %v: y not flipped: %v vs %v", b, lo, hi)
		}
	}
}

func TestScaleAndBounds(t *testing.T) {
	p, _ := newRecorded(10, 5)
	if x, y := p.Scale(); x != 10 || y != -20 {
		t.Errorf("Scale() = %v, %v, want 10, -20", x, y)
	}
	if min, max := p.Bounds(); min != (canvas.Point{X: -10, Y: -5}) || max != (canvas.Point{X: 10, Y: 5}) {
		t.Errorf("Bounds() = %v, %v", min, max)
	}
}

func TestAxes(t *testing.T) {
	_, rec := newRecorded(10, 5)
	cmds := rec.Commands
	if len(cmds) < 6 {
		t.Fatalf("only %d commands drawn", len(cmds))
	}

	wantOps := []canvas.Op{canvas.OpLine, canvas.OpLine, canvas.OpPath, canvas.OpPath, canvas.OpText, canvas.OpText}
	for i, op := range wantOps {
		if cmds[i].Op != op {
			t.Errorf("command %d: op %v, want %v", i, cmds[i].Op, op)
		}
	}
	xAxis := []canvas.Point{{X: -95, Y: 0}, {X: 97, Y: 0}}
	yAxis := []canvas.Point{{X: 0, Y: -97}, {X: 0, Y: 95}}
	if !samePoints(cmds[0].Points, xAxis) || !samePoints(cmds[1].Points, yAxis) {
		t.Errorf("axes = %v, %v", cmds[0].Points, cmds[1].Points)
	}
	for _, c := range cmds[2:4] {
		if !c.Closed || c.Style.Fill == nil || len(c.Points) != 3 {
			t.Errorf("arrowhead not a closed filled triangle: %+v", c)
		}
	}
	if cmds[2].Points[0] != (canvas.Point{X: 100}) || cmds[3].Points[0] != (canvas.Point{Y: -100}) {
		t.Errorf("arrowhead tips at %v, %v", cmds[2].Points[0], cmds[3].Points[0])
	}
	if cmds[4].Text != "x" || cmds[5].Text != "y" || cmds[4].Size != canvas.Large {
		t.Errorf("axis labels = %+v, %+v", cmds[4], cmds[5])
	}
}

func samePoints(a, b []canvas.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i].X, b[i].X) || !near(a[i].Y, b[i].Y) {
			return false
		}
	}
	return true
}

func TestTicks(t *testing.T) {
	for _, test := range []struct {
		xMax, yMax     float64
		xTicks, yTicks int // ticks drawn per side
	}{
		{10, 5, 9, 4},        // step 1 on both axes
		{0.5, 0.5, 0, 0},     // range 1, step 1, no tick inside
		{50, 25, 9, 12},      // x step 5, y step 2
		{1000, 10, 9, 9},     // x step 100
		{10.5, 20.5, 10, 10}, // non-integer bounds
	} {
		_, rec := newRecorded(test.xMax, test.yMax)
		lines := rec.Filter(canvas.OpLine)
		texts := rec.Filter(canvas.OpText)
		nTicks := 2 * (test.xTicks + test.yTicks)
		if len(lines) != 2+nTicks {
			t.Errorf("bounds %v,%v: %d lines, want %d", test.xMax, test.yMax, len(lines), 2+nTicks)
		}
		if len(texts) != 2+nTicks {
			t.Errorf("bounds %v,%v: %d labels, want %d", test.xMax, test.yMax, len(texts), 2+nTicks)
		}
	}
}

func TestHugeBounds(t *testing.T) {
	_, rec := newRecorded(1e20, 1)
	texts := rec.Filter(canvas.OpText)
	if len(texts) != 2+2*9 {
		t.Fatalf("got %d labels, want %d", len(texts), 2+2*9)
	}
	if got := texts[2].Text; got != "10000000000000000000" {
		t.Errorf("first x label = %q, want 1e19 written out", got)
	}
	if got := texts[3].Text; got != "-10000000000000000000" {
		t.Errorf("second x label = %q", got)
	}
}

func TestTickPlacement(t *testing.T) {
	p, rec := newRecorded(50, 5)
	xs, ys := p.Scale()
	cmds := rec.Commands[6:]

	// First x tick at +5, its label, then -5 and its label.
	if c := cmds[0]; c.Op != canvas.OpLine || !samePoints(c.Points, []canvas.Point{{X: 5 * xs, Y: 1.5}, {X: 5 * xs, Y: -1.5}}) {
		t.Errorf("first x tick = %+v", c)
	}
	if c := cmds[1]; c.Text != "5" || !samePoints(c.Points, []canvas.Point{{X: 5*xs - 2, Y: 5}}) || c.Size != canvas.Medium {
		t.Errorf("first x label = %+v", c)
	}
	if c := cmds[3]; c.Text != "-5" {
		t.Errorf("second x label = %+v", c)
	}
	if w := cmds[0].Style.Width; w != 0.5 {
		t.Errorf("tick width = %v, want 0.5", w)
	}

	// Each of the 9 x tick pairs drew 4 commands.
	yStart := 4 * 9
	if c := cmds[yStart]; !samePoints(c.Points, []canvas.Point{{X: 1.5, Y: ys}, {X: -1.5, Y: ys}}) {
		t.Errorf("first y tick = %+v", c)
	}
	if c := cmds[yStart+1]; c.Text != "1" || !samePoints(c.Points, []canvas.Point{{X: -7, Y: ys + 1}}) {
		t.Errorf("first y label = %+v", c)
	}
}

func TestAddPolynomial(t *testing.T) {
	for _, xMax := range []float64{10, 1000} {
		p, rec := newRecorded(xMax, 5)
		before := len(rec.Commands)
		p.AddPolynomial(polynomial.Monomials{0, 0, 1}, color.Black)
		if len(rec.Commands) != before+1 {
			t.Fatalf("x max %v: AddPolynomial drew %d commands", xMax, len(rec.Commands)-before)
		}
		c := rec.Commands[before]
		if c.Op != canvas.OpPath || c.Closed {
			t.Errorf("x max %v: want open path, got %+v", xMax, c.Op)
		}
		if len(c.Points) != 500 {
			t.Errorf("x max %v: %d points, want 500", xMax, len(c.Points))
		}
		if !near(c.Points[0].X, -100) {
			t.Errorf("x max %v: first sample at %v, want -100", xMax, c.Points[0].X)
		}
		if last := c.Points[499].X; last >= 100 || !near(last, 100-200.0/500) {
			t.Errorf("x max %v: last sample at %v", xMax, last)
		}
		if c.Style.Width != 0.5 || c.Style.Stroke != color.Black {
			t.Errorf("x max %v: style %+v", xMax, c.Style)
		}
	}
}

func TestParabola(t *testing.T) {
	p, rec := newRecorded(10, 5)
	p.AddPolynomial(polynomial.Monomials{0, 0, 1}, color.Black)
	paths := rec.Filter(canvas.OpPath)
	if len(paths) != 3 {
		t.Fatalf("want 2 arrowheads and 1 curve, got %d paths", len(paths))
	}
	pts := paths[2].Points

	// Sample 250 is x=0; the curve is symmetric about it and opens
	// upward, which is toward smaller canvas y.
	if math.Abs(pts[250].X) > eps {
		t.Errorf("middle sample at x=%v", pts[250].X)
	}
	if math.Abs(pts[250].Y) > eps {
		t.Errorf("vertex at canvas y=%v, want 0", pts[250].Y)
	}
	for i := 1; i < 250; i++ {
		l, r := pts[250-i], pts[250+i]
		if math.Abs(l.X+r.X) > 1e-6 || math.Abs(l.Y-r.Y) > 1e-6 {
			t.Fatalf("not symmetric at offset %d: %v vs %v", i, l, r)
		}
		if !(l.Y < pts[250-i+1].Y) {
			t.Fatalf("not rising away from vertex at offset %d", i)
		}
	}
	// x=-10 maps to y=100 math, -2000 canvas: no clipping.
	if !near(pts[0].Y, -2000) {
		t.Errorf("first sample canvas y = %v, want -2000", pts[0].Y)
	}
}

func TestAddInterval(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	p, rec := newRecorded(10, 5)
	xs, _ := p.Scale()
	before := len(rec.Commands)
	p.AddInterval(Interval{Min: -2, Max: 3}, blue)
	cmds := rec.Commands[before:]
	if len(cmds) != 3 {
		t.Fatalf("AddInterval drew %d commands, want 3", len(cmds))
	}

	quad := cmds[0]
	wantQuad := []canvas.Point{{X: -2 * xs, Y: 100}, {X: 3 * xs, Y: 100}, {X: 3 * xs, Y: -100}, {X: -2 * xs, Y: -100}}
	if quad.Op != canvas.OpPath || !quad.Closed || !samePoints(quad.Points, wantQuad) {
		t.Errorf("quad = %+v", quad)
	}
	if quad.Style.Fill != blue || quad.Style.Opacity != 0.2 || quad.Style.Width != 0 {
		t.Errorf("quad style = %+v", quad.Style)
	}

	left, right := cmds[1], cmds[2]
	if left.Op != canvas.OpLine || right.Op != canvas.OpLine {
		t.Fatalf("boundaries are not lines: %v %v", left.Op, right.Op)
	}
	for _, pt := range left.Points {
		if !near(pt.X, -2*xs) {
			t.Errorf("left boundary at x=%v, want %v", pt.X, -2*xs)
		}
	}
	for _, pt := range right.Points {
		if !near(pt.X, 3*xs) {
			t.Errorf("right boundary at x=%v, want %v", pt.X, 3*xs)
		}
	}
	if left.Style.Stroke != blue || left.Style.EffectiveOpacity() != 1 || left.Style.Width != 0.1 {
		t.Errorf("boundary style = %+v", left.Style)
	}
}

func TestDegenerateInterval(t *testing.T) {
	p, rec := newRecorded(10, 5)
	before := len(rec.Commands)
	p.AddInterval(Interval{Min: 1, Max: 1}, color.Black)
	p.AddInterval(Interval{Min: 3, Max: -3}, color.Black)
	cmds := rec.Commands[before:]
	if len(cmds) != 6 {
		t.Fatalf("drew %d commands, want 6", len(cmds))
	}
	quad := cmds[0].Points
	if quad[0].X != quad[1].X {
		t.Errorf("zero-width interval has width %v", quad[1].X-quad[0].X)
	}
	if rev := cmds[3].Points; !(rev[0].X > rev[1].X) {
		t.Errorf("reversed interval not drawn as given: %v", rev)
	}
}

func TestConfig(t *testing.T) {
	rec := new(canvas.Recorder)
	cfg := Config{
		Viewport: Viewport{canvas.Point{X: 0, Y: 0}, canvas.Point{X: 400, Y: 300}},
		Samples:  50,
	}
	p := NewWithConfig(rec, cfg, 4, 3)
	if x, y := p.Scale(); x != 50 || y != -50 {
		t.Errorf("Scale() = %v, %v, want 50, -50", x, y)
	}
	if got := rec.Commands[0].Points[1]; got != (canvas.Point{X: 397, Y: 0}) {
		t.Errorf("x axis ends at %v", got)
	}

	p.AddPolynomial(polynomial.Monomials{1}, color.Black)
	paths := rec.Filter(canvas.OpPath)
	if n := len(paths[len(paths)-1].Points); n != 50 {
		t.Errorf("custom Samples: %d points, want 50", n)
	}

	// Zero TickTarget falls back to the default.
	if p.cfg.TickTarget != DefaultConfig.TickTarget {
		t.Errorf("TickTarget = %d, want %d", p.cfg.TickTarget, DefaultConfig.TickTarget)
	}
}

func TestCreate(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test")
	p, err := Create(name, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	p.AddPolynomial(polynomial.Monomials{0, 0, 1}, color.Black)
	p.AddInterval(Interval{Min: -2, Max: 3}, color.RGBA{255, 0, 0, 255})
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if n := strings.Count(out, "<path"); n != 4 {
		t.Errorf("want 4 paths (2 arrows, curve, interval), got %d", n)
	}
	if !strings.Contains(out, ">x</text>") || !strings.Contains(out, ">-9</text>") {
		t.Errorf("missing labels in output")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("SVG not finished")
	}

	if _, err := Create(filepath.Join(t.TempDir(), "no", "such", "dir"), 1, 1); err == nil {
		t.Errorf("Create in missing directory succeeded")
	}
}

func TestCloseNoCloser(t *testing.T) {
	p, _ := newRecorded(1, 1)
	if err := p.Close(); err != nil {
		t.Errorf("Close on recorder: %v", err)
	}
}

func TestSteepPolynomialRaster(t *testing.T) {
	// x^8 leaves the viewport almost at once and reaches 1e8 at the
	// edges of the plot. Drawing it must ink only the narrow cup near
	// the origin.
	r, err := raster.New(200, 200, DefaultConfig.Viewport.Min, DefaultConfig.Viewport.Max)
	if err != nil {
		t.Fatal(err)
	}
	p := New(r, 10, 10)
	before := inked(r.Image())
	p.AddPolynomial(polynomial.Monomials{0, 0, 0, 0, 0, 0, 0, 0, 1}, color.Black)
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	added := inked(r.Image()) - before
	if added == 0 || added > 2000 {
		t.Errorf("x^8 inked %d new pixels, want a thin curve", added)
	}
}

func inked(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, g, bl, _ := img.At(x, y).RGBA(); r != 0xffff || g != 0xffff || bl != 0xffff {
				n++
			}
		}
	}
	return n
}
