// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polynomial represents polynomials in one variable by their
// coefficients.
package polynomial

import (
	"fmt"
	"strconv"
	"strings"
)

// Monomials is a polynomial stored as its coefficients, lowest
// degree first: p[i] is the coefficient of x^i.
type Monomials []float64

// Evaluate returns p(x). The zero polynomial evaluates to 0.
func Evaluate(p Monomials, x float64) float64 {
	y := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Func returns p as a function of x.
func (p Monomials) Func() func(x float64) float64 {
	return func(x float64) float64 { return Evaluate(p, x) }
}

// Degree returns the index of the highest non-zero coefficient, or
// -1 for the zero polynomial.
func (p Monomials) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Parse parses a comma-separated list of coefficients, lowest degree
// first. For example, "1,0,-2" is 1 - 2x^2.
func Parse(s string) (Monomials, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty polynomial")
	}
	fields := strings.Split(s, ",")
	p := make(Monomials, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

// String formats p with the highest degree term first, like
// "x^2 - 3x + 1".
func (p Monomials) String() string {
	var b strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		c := p[i]
		if c == 0 {
			continue
		}
		if b.Len() == 0 {
			if c < 0 {
				b.WriteString("-")
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		if c != 1 || i == 0 {
			b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			fmt.Fprintf(&b, "x^%d", i)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
