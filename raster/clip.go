// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"math"

	"github.com/aclements/go-mathplot/scale"
)

// pt is a point in pixel coordinates.
type pt struct {
	x, y float64
}

func (p pt) finite() bool {
	return !math.IsInf(p.x, 0) && !math.IsNaN(p.x) && !math.IsInf(p.y, 0) && !math.IsNaN(p.y)
}

// clipRect is the pixel region geometry is clipped to before it is
// converted to fixed point, which only holds about ±3.3e7 pixels.
// Both scales are in clamp mode and span the region.
type clipRect struct {
	x, y scale.OutputScale
}

// newClipRect returns the image bounds grown by pad on every side.
func newClipRect(width, height int, pad float64) clipRect {
	r := clipRect{
		x: scale.NewOutputScale(-pad, float64(width)+pad),
		y: scale.NewOutputScale(-pad, float64(height)+pad),
	}
	r.x.Clamp()
	r.y.Clamp()
	return r
}

func (r clipRect) contains(p pt) bool {
	x0, x1 := r.x.Range()
	y0, y1 := r.y.Range()
	return p.finite() && x0 <= p.x && p.x <= x1 && y0 <= p.y && p.y <= y1
}

// snap pins p inside r. It only corrects rounding in points that
// clipping already placed on the boundary.
func (r clipRect) snap(p pt) pt {
	p.x, _ = r.x.Limit(p.x)
	p.y, _ = r.y.Limit(p.y)
	return p
}

// clipSegment clips the segment a–b to r using the Liang–Barsky
// algorithm. ok is false if no part of the segment is inside r.
func (r clipRect) clipSegment(a, b pt) (ca, cb pt, ok bool) {
	if !a.finite() || !b.finite() {
		return a, b, false
	}
	x0, x1 := r.x.Range()
	y0, y1 := r.y.Range()
	dx, dy := b.x-a.x, b.y-a.y
	t0, t1 := 0.0, 1.0
	enter, exit := -1, -1
	for i, e := range [4][2]float64{
		{-dx, a.x - x0},
		{dx, x1 - a.x},
		{-dy, a.y - y0},
		{dy, y1 - a.y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0, enter = t, i
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1, exit = t, i
			}
		}
	}
	ca, cb = a, b
	if enter >= 0 {
		ca = r.onEdge(a, b, enter)
	}
	if exit >= 0 {
		cb = r.onEdge(a, b, exit)
	}
	return ca, cb, true
}

// onEdge returns where the line through a and b meets edge i of r,
// numbered left, right, top, bottom.
func (r clipRect) onEdge(a, b pt, i int) pt {
	x0, x1 := r.x.Range()
	y0, y1 := r.y.Range()
	var p pt
	switch i {
	case 0:
		p = crossX(a, b, x0)
	case 1:
		p = crossX(a, b, x1)
	case 2:
		p = crossY(a, b, y0)
	default:
		p = crossY(a, b, y1)
	}
	return r.snap(p)
}

// clipPolyline clips the polyline through pts to r. The result is the
// list of visible runs; a run ends wherever the polyline leaves r.
func (r clipRect) clipPolyline(pts []pt) [][]pt {
	var runs [][]pt
	var run []pt
	for i := 1; i < len(pts); i++ {
		a, b, ok := r.clipSegment(pts[i-1], pts[i])
		if !ok {
			if run != nil {
				runs, run = append(runs, run), nil
			}
			continue
		}
		if run == nil || run[len(run)-1] != a {
			if run != nil {
				runs = append(runs, run)
			}
			run = []pt{a}
		}
		run = append(run, b)
		if b != pts[i] {
			runs, run = append(runs, run), nil
		}
	}
	if run != nil {
		runs = append(runs, run)
	}
	return runs
}

// clipPolygon clips the closed polygon pts to r using the
// Sutherland–Hodgman algorithm. Non-finite vertices are dropped.
func (r clipRect) clipPolygon(pts []pt) []pt {
	poly := make([]pt, 0, len(pts))
	for _, p := range pts {
		if p.finite() {
			poly = append(poly, p)
		}
	}
	x0, x1 := r.x.Range()
	y0, y1 := r.y.Range()
	edges := []struct {
		inside func(p pt) bool
		cross  func(a, b pt) pt
	}{
		{func(p pt) bool { return p.x >= x0 }, func(a, b pt) pt { return crossX(a, b, x0) }},
		{func(p pt) bool { return p.x <= x1 }, func(a, b pt) pt { return crossX(a, b, x1) }},
		{func(p pt) bool { return p.y >= y0 }, func(a, b pt) pt { return crossY(a, b, y0) }},
		{func(p pt) bool { return p.y <= y1 }, func(a, b pt) pt { return crossY(a, b, y1) }},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		in := poly
		poly = make([]pt, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch curIn, prevIn := e.inside(cur), e.inside(prev); {
			case curIn && prevIn:
				poly = append(poly, cur)
			case curIn:
				poly = append(poly, e.cross(cur, prev), cur)
			case prevIn:
				poly = append(poly, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return poly
}

// crossX returns where the line through a and b crosses the
// vertical line at x. The result is interpolated from whichever of a
// and b is nearer that line, so a very distant far end costs no
// precision.
func crossX(a, b pt, x float64) pt {
	if math.Abs(b.x-x) < math.Abs(a.x-x) {
		a, b = b, a
	}
	if a.x == x {
		return pt{x, a.y}
	}
	return pt{x, a.y + (x-a.x)*((b.y-a.y)/(b.x-a.x))}
}

// crossY is like crossX for the horizontal line at y.
func crossY(a, b pt, y float64) pt {
	if math.Abs(b.y-y) < math.Abs(a.y-y) {
		a, b = b, a
	}
	if a.y == y {
		return pt{a.x, y}
	}
	return pt{a.x + (y-a.y)*((b.x-a.x)/(b.y-a.y)), y}
}
