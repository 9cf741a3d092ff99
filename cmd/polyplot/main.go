// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command polyplot draws polynomials and shaded x intervals on a set
// of axes and writes the result as SVG or PNG.
//
// Polynomials are given as comma-separated coefficients, lowest
// degree first, optionally followed by a color. For example, to plot
// y = x² in blue and y = 1 - x in the default color, shading the
// range [-2, 3]:
//
//	polyplot -o parabola -x 10 -y 5 -p 0,0,1:blue -p 1,-1 -i -2:3:orange
//
// Colors are SVG color names, such as "steelblue", or #rrggbb.
// Intervals are drawn beneath all polynomials.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-mathplot/plot"
	"github.com/aclements/go-mathplot/raster"
	"github.com/aclements/go-mathplot/svg"
)

func main() {
	var (
		polys     polyList
		intervals intervalList
	)
	var (
		flagOut    = flag.String("o", "plot", "write output to `name`; an extension is added if missing")
		flagX      = flag.Float64("x", 10, "plot x in [-`xmax`, xmax]")
		flagY      = flag.Float64("y", 10, "plot y in [-`ymax`, ymax]")
		flagFormat = flag.String("format", "svg", "output `format`: svg or png")
		flagWidth  = flag.Int("w", 800, "PNG width and height in `pixels`")
	)
	flag.Var(&polys, "p", "add polynomial `coeffs[:color]`; may be repeated")
	flag.Var(&intervals, "i", "shade interval `min:max[:color]`; may be repeated")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if !(*flagX > 0 && *flagY > 0) {
		fmt.Fprintln(os.Stderr, "-x and -y must be positive")
		os.Exit(1)
	}
	if !(*flagFormat == "svg" || *flagFormat == "png") {
		fmt.Fprintln(os.Stderr, "-format must be svg or png")
		os.Exit(1)
	}

	p, name, err := open(*flagFormat, *flagOut, *flagWidth, *flagX, *flagY)
	if err != nil {
		log.Fatal(err)
	}
	for _, iv := range intervals {
		p.AddInterval(iv.Interval, iv.color)
	}
	for _, poly := range polys {
		p.AddPolynomial(poly.p, poly.color)
	}
	if err := p.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", name)
}

func open(format, out string, width int, xMax, yMax float64) (*plot.Plot, string, error) {
	if format == "png" {
		vp := plot.DefaultConfig.Viewport
		f, err := raster.Create(out, width, width, vp.Min, vp.Max)
		if err != nil {
			return nil, "", err
		}
		return plot.New(f, xMax, yMax), f.Name(), nil
	}
	p, err := plot.Create(out, xMax, yMax)
	if err != nil {
		return nil, "", err
	}
	return p, svg.FileName(out), nil
}
