// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/aclements/go-mathplot/canvas"
)

// File is an SVG canvas backed by a file on disk.
type File struct {
	*SVG
	f  *os.File
	bw *bufio.Writer
}

// FileName returns the output file name for a plot called name:
// name itself if it has an extension, otherwise name + ".svg".
func FileName(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".svg"
	}
	return name
}

// Create creates the file FileName(name) and starts an SVG document
// in it for a viewport spanning min to max.
func Create(name string, min, max canvas.Point) (*File, error) {
	f, err := os.Create(FileName(name))
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	return &File{SVG: New(bw, min, max), f: f, bw: bw}, nil
}

// Name returns the path of the underlying file.
func (f *File) Name() string {
	return f.f.Name()
}

// Close finishes the SVG document, flushes it, and closes the file.
// It returns the first error from any of these or from earlier
// drawing calls.
func (f *File) Close() error {
	err := f.Done()
	if ferr := f.bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	return err
}
