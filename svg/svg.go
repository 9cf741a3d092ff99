// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg implements canvas.Canvas by streaming SVG elements to
// an io.Writer.
package svg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-mathplot/canvas"
)

// SVG writes an SVG document whose viewBox is the canvas viewport.
//
// Write errors are sticky: after the first failure, further output
// is discarded and the error is returned by Done.
type SVG struct {
	w   io.Writer
	err error

	path []string
	done bool
}

var _ canvas.Canvas = (*SVG)(nil)

// New writes the SVG header to w for a viewport spanning min to max.
func New(w io.Writer, min, max canvas.Point) *SVG {
	s := &SVG{w: w}
	width, height := max.X-min.X, max.Y-min.Y
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%v %v %v %v\">\n",
		svglen(min.X), svglen(min.Y), svglen(width), svglen(height))
	s.fprintf("<rect x=\"%v\" y=\"%v\" width=\"%v\" height=\"%v\" fill=\"white\"/>\n",
		svglen(min.X), svglen(min.Y), svglen(width), svglen(height))
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val != "" {
		return " style=\"" + val + "\""
	} else {
		return ""
	}
}

func styleOf(st canvas.Style) string {
	stroke, lineWidth := "stroke:none", ""
	if st.Width > 0 {
		stroke = "stroke:" + colorToCSS(st.StrokeColor())
		lineWidth = fmt.Sprintf("stroke-width:%v", svglen(st.Width))
	}
	fill := "fill:none"
	if st.Fill != nil {
		fill = "fill:" + colorToCSS(st.Fill)
	}
	opacity := ""
	if o := st.EffectiveOpacity(); o != 1 {
		opacity = fmt.Sprintf("opacity:%v", svglen(o))
	}
	return style(stroke, lineWidth, fill, opacity)
}

func (s *SVG) newPath() {
	s.path = s.path[:0]
}

func (s *SVG) moveTo(p canvas.Point) {
	s.path = append(s.path, fmt.Sprintf("M%v %v", svglen(p.X), svglen(p.Y)))
}

func (s *SVG) lineTo(p canvas.Point) {
	s.path = append(s.path, fmt.Sprintf("L%v %v", svglen(p.X), svglen(p.Y)))
}

func (s *SVG) closePath() {
	s.path = append(s.path, "z")
}

func (s *SVG) pathData() string {
	return strings.Join(s.path, "")
}

func (s *SVG) Line(p1, p2 canvas.Point, st canvas.Style) {
	s.fprintf("<line x1=\"%v\" y1=\"%v\" x2=\"%v\" y2=\"%v\"%s/>\n",
		svglen(p1.X), svglen(p1.Y), svglen(p2.X), svglen(p2.Y), styleOf(st))
}

func (s *SVG) LinePath(pts []canvas.Point, closed bool, st canvas.Style) {
	if len(pts) == 0 {
		return
	}
	s.newPath()
	s.moveTo(pts[0])
	for _, p := range pts[1:] {
		s.lineTo(p)
	}
	if closed {
		s.closePath()
	}
	s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), styleOf(st))
}

func (s *SVG) Text(pos canvas.Point, text string, size canvas.TextSize) {
	s.fprintf("<text x=\"%v\" y=\"%v\" font-size=\"%v\" font-family=\"sans-serif\">",
		svglen(pos.X), svglen(pos.Y), svglen(size.Height()))
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
	s.fprintf("</text>\n")
}

// Done writes the SVG trailer and returns the first error
// encountered while writing. Calling Done more than once only writes
// the trailer once.
func (s *SVG) Done() error {
	if !s.done {
		s.fprintf("</svg>\n")
		s.done = true
	}
	return s.err
}
