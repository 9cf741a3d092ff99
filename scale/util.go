// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

func minmax(xs []float64) (min float64, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Map applies s and then out to x. The result is false if out crops
// the value.
func Map(s Interface, out OutputScale, x float64) (float64, bool) {
	return out.Of(s.Of(x))
}
