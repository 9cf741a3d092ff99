// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// OutputScale maps the unit interval on to an output range, such as
// a range of pixels. Values outside [0, 1] are cropped by default.
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop causes values outside [0, 1] to be rejected.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp causes values outside [0, 1] to be extrapolated.
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp causes values outside [0, 1] to be pinned to the nearest end.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Range returns the output range of s.
func (s OutputScale) Range() (min, max float64) {
	return s.min, s.max
}

// Limit applies s's cropping or clamping to y, a value already in the
// output range.
func (s OutputScale) Limit(y float64) (float64, bool) {
	lo, hi := math.Min(s.min, s.max), math.Max(s.min, s.max)
	switch s.clamp {
	case clampCrop:
		if y < lo || y > hi {
			return 0, false
		}
	case clampClamp:
		y = math.Max(lo, math.Min(hi, y))
	}
	return y, true
}

func (s OutputScale) Of(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	} else if s.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}
