// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

// Op identifies a kind of recorded drawing primitive.
type Op int

const (
	OpLine Op = iota
	OpPath
	OpText
)

// A Command is one recorded drawing primitive.
type Command struct {
	Op     Op
	Points []Point // Line: 2 points; Path: all points; Text: position
	Closed bool
	Style  Style
	Text   string
	Size   TextSize
}

// Recorder is a Canvas that remembers every primitive drawn on it,
// in order. It is useful for replaying a drawing on to another
// canvas and for inspecting what was drawn.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Line(p1, p2 Point, s Style) {
	r.Commands = append(r.Commands, Command{Op: OpLine, Points: []Point{p1, p2}, Style: s})
}

func (r *Recorder) LinePath(pts []Point, closed bool, s Style) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.Commands = append(r.Commands, Command{Op: OpPath, Points: cp, Closed: closed, Style: s})
}

func (r *Recorder) Text(pos Point, text string, size TextSize) {
	r.Commands = append(r.Commands, Command{Op: OpText, Points: []Point{pos}, Text: text, Size: size})
}

// Filter returns the recorded commands of kind op.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Replay draws every recorded command on to c.
func (r *Recorder) Replay(c Canvas) {
	for _, cmd := range r.Commands {
		switch cmd.Op {
		case OpLine:
			c.Line(cmd.Points[0], cmd.Points[1], cmd.Style)
		case OpPath:
			c.LinePath(cmd.Points, cmd.Closed, cmd.Style)
		case OpText:
			c.Text(cmd.Points[0], cmd.Text, cmd.Size)
		}
	}
}
