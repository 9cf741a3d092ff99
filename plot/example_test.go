// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot_test

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-mathplot/canvas"
	"github.com/aclements/go-mathplot/plot"
	"github.com/aclements/go-mathplot/polynomial"
)

func Example() {
	var rec canvas.Recorder
	p := plot.New(&rec, 10, 5)
	p.AddInterval(plot.Interval{Min: -2, Max: 3}, color.RGBA{0, 0, 255, 255})
	p.AddPolynomial(polynomial.Monomials{0, 0, 1}, color.Black)

	fmt.Println("lines:", len(rec.Filter(canvas.OpLine)))
	fmt.Println("paths:", len(rec.Filter(canvas.OpPath)))
	fmt.Println("labels:", len(rec.Filter(canvas.OpText)))
	curve := rec.Commands[len(rec.Commands)-1]
	fmt.Println("curve points:", len(curve.Points))
	// Output:
	// lines: 30
	// paths: 4
	// labels: 28
	// curve points: 500
}
