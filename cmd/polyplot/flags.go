// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/aclements/go-mathplot/plot"
	"github.com/aclements/go-mathplot/polynomial"
)

var defaultColor color.Color = color.Black

type polyFlag struct {
	p     polynomial.Monomials
	color color.Color
}

// polyList is a repeatable flag.Value of "coeffs[:color]".
type polyList []polyFlag

func (l *polyList) String() string {
	parts := make([]string, len(*l))
	for i, pf := range *l {
		parts[i] = pf.p.String()
	}
	return strings.Join(parts, "; ")
}

func (l *polyList) Set(s string) error {
	coeffs, col, _ := strings.Cut(s, ":")
	p, err := polynomial.Parse(coeffs)
	if err != nil {
		return err
	}
	c, err := parseColor(col)
	if err != nil {
		return err
	}
	*l = append(*l, polyFlag{p, c})
	return nil
}

type intervalFlag struct {
	plot.Interval
	color color.Color
}

// intervalList is a repeatable flag.Value of "min:max[:color]".
type intervalList []intervalFlag

func (l *intervalList) String() string {
	parts := make([]string, len(*l))
	for i, iv := range *l {
		parts[i] = fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
	}
	return strings.Join(parts, "; ")
}

func (l *intervalList) Set(s string) error {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("interval %q: want min:max[:color]", s)
	}
	var iv intervalFlag
	var err error
	if iv.Min, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return fmt.Errorf("interval min: %w", err)
	}
	if iv.Max, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return fmt.Errorf("interval max: %w", err)
	}
	col := ""
	if len(fields) == 3 {
		col = fields[2]
	}
	if iv.color, err = parseColor(col); err != nil {
		return err
	}
	*l = append(*l, iv)
	return nil
}

// parseColor parses an SVG color name or #rrggbb. The empty string
// is the default color.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return defaultColor, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return nil, fmt.Errorf("color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", s, err)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
