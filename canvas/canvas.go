// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas defines the drawing surface that plots are rendered
// on to.
//
// A Canvas works in its own coordinate system, the viewport, which
// is fixed when the canvas is created. Y grows downward in the
// viewport. Backends such as package svg and package raster
// implement Canvas.
package canvas

import "image/color"

// A Point is a 2-D coordinate. It is used both for math-space and
// viewport coordinates.
type Point struct {
	X, Y float64
}

// Style gives the drawing attributes of a line or path.
type Style struct {
	// Width is the stroke width in viewport units. A zero Width
	// draws no stroke.
	Width float64

	// Stroke is the stroke color. nil means black.
	Stroke color.Color

	// Fill is the fill color. nil means the path is not filled.
	Fill color.Color

	// Opacity applies to the whole element. 0 means fully opaque.
	Opacity float64
}

// EffectiveOpacity returns s.Opacity, treating 0 as 1.
func (s Style) EffectiveOpacity() float64 {
	if s.Opacity == 0 {
		return 1
	}
	return s.Opacity
}

// StrokeColor returns s.Stroke, defaulting to black.
func (s Style) StrokeColor() color.Color {
	if s.Stroke == nil {
		return color.Black
	}
	return s.Stroke
}

type TextSize int

const (
	Small TextSize = iota
	Medium
	Large
)

// Height returns the font size of t in viewport units.
func (t TextSize) Height() float64 {
	switch t {
	case Small:
		return 3
	case Large:
		return 6
	}
	return 4
}

func (t TextSize) String() string {
	switch t {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return "TextSize(?)"
}

// A Canvas receives drawing primitives in viewport coordinates.
// Later primitives render on top of earlier ones.
//
// Drawing methods do not return errors. Implementations record the
// first failure and report it when the canvas is finalized.
type Canvas interface {
	// Line draws a straight segment from p1 to p2.
	Line(p1, p2 Point, s Style)

	// LinePath draws the polyline through pts. If closed, the
	// last point is joined back to the first.
	LinePath(pts []Point, closed bool, s Style)

	// Text draws text with its baseline starting at pos.
	Text(pos Point, text string, size TextSize)
}
