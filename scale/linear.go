// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

type Linear struct {
	min, width float64
}

// NewLinear returns a new linear scale spanning the minimum and
// maximum of input.
func NewLinear(input []float64) Linear {
	min, max := minmax(input)
	return Linear{min, max - min}
}

// Bounds returns the input range of s.
func (s Linear) Bounds() (min, max float64) {
	return s.min, s.min + s.width
}

func (s Linear) Of(x float64) float64 {
	return (x - s.min) / s.width
}

// Step returns the whole-number spacing between major ticks that
// gives roughly n ticks across the whole range. It is never less
// than 1.
func (s Linear) Step(n int) float64 {
	return math.Max(math.Floor(s.width/float64(n)), 1)
}

// Ticks returns major ticks at multiples of Step(n), walking outward
// from 0. Each positive tick v is immediately followed by -v. Only
// ticks strictly inside the scale's range are returned and 0 is never
// a tick. There are no minor ticks.
func (s Linear) Ticks(n int) (major, minor []float64) {
	major, minor = []float64{}, []float64{}
	min, max := s.Bounds()
	step := s.Step(n)

	// Multiples k*step for k in [pLo, pHi] lie inside the range on
	// the positive side, and -k*step for k in [mLo, mHi] on the
	// negative side. Either span may be empty.
	pLo, pHi := math.Max(1, math.Floor(min/step)+1), math.Ceil(max/step)-1
	mLo, mHi := math.Max(1, math.Floor(-max/step)+1), math.Ceil(-min/step)-1
	lo, hi := math.Inf(1), math.Inf(-1)
	if pLo <= pHi {
		lo, hi = pLo, pHi
	}
	if mLo <= mHi {
		lo, hi = math.Min(lo, mLo), math.Max(hi, mHi)
	}
	for k := lo; k <= hi; k++ {
		if v := k * step; v > min && v < max {
			major = append(major, v)
		}
		if v := -k * step; v > min && v < max {
			major = append(major, v)
		}
	}
	return
}
