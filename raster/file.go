// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/aclements/go-mathplot/canvas"
)

// File is a raster canvas that is written as PNG when closed.
type File struct {
	*Canvas
	name string
}

// FileName returns name, with ".png" appended if it has no
// extension.
func FileName(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".png"
	}
	return name
}

// Create returns a canvas that will be written to FileName(name) by
// Close. Nothing is written until Close.
func Create(name string, width, height int, min, max canvas.Point) (*File, error) {
	c, err := New(width, height, min, max)
	if err != nil {
		return nil, err
	}
	return &File{Canvas: c, name: FileName(name)}, nil
}

// Name returns the path the image is written to.
func (f *File) Name() string {
	return f.name
}

// Close encodes the image to the file.
func (f *File) Close() error {
	if err := f.Err(); err != nil {
		return err
	}
	out, err := os.Create(f.name)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	err = f.Encode(bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
