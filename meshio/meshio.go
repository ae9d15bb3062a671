// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads and writes triangle meshes in text formats.
// Formats are selected by file extension, from the [Decoders] and
// [Encoders] lists: .obj is Wavefront OBJ and .off is the Object File
// Format. Decoding produces a flat position list and a flat list of
// 0-based triangle indices, which is what [halfedge.Build] takes, and
// encoding takes positions and per-face vertex loops, which is what
// [halfedge.Mesh.FaceLoops] returns.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/subdivide/base/errors"
	"cogentcore.org/subdivide/halfedge"
	"cogentcore.org/subdivide/math32"
)

// Data is a decoded mesh: vertex positions and triangle indices,
// grouped in triples.
type Data struct {
	Positions []math32.Vector3
	Indices   []int

	// Warnings has messages about lines that were skipped.
	Warnings []string
}

// NumTriangles returns the number of triangles.
func (d *Data) NumTriangles() int {
	return len(d.Indices) / 3
}

// Decoder decodes one mesh file format.
type Decoder interface {
	// New returns a new instance of the decoder, with the same options,
	// for decoding one file.
	New() Decoder

	// Desc returns a description of the format.
	Desc() string

	// Decode reads the given data.
	Decode(r io.Reader) (*Data, error)
}

// Encoder encodes one mesh file format.
type Encoder interface {
	// Desc returns a description of the format.
	Desc() string

	// Encode writes the given positions and faces, where each face is
	// a loop of 0-based indexes into positions.
	Encode(w io.Writer, positions []math32.Vector3, faces [][]int) error
}

// Decoders is the list of decoders, indexed by file extension.
var Decoders = map[string]Decoder{
	".obj": &OBJDecoder{},
	".off": &OFFDecoder{},
}

// Encoders is the list of encoders, indexed by file extension.
var Encoders = map[string]Encoder{
	".obj": &OBJEncoder{},
	".off": &OFFEncoder{},
}

// ErrFormat is returned for a file extension with no registered format.
var ErrFormat = errors.New("meshio: unknown mesh format")

func decoderFor(fname string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	dt, has := Decoders[ext]
	if !has {
		return nil, fmt.Errorf("%w: file extension %q of %s", ErrFormat, ext, fname)
	}
	return dt.New(), nil
}

func encoderFor(fname string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	et, has := Encoders[ext]
	if !has {
		return nil, fmt.Errorf("%w: file extension %q of %s", ErrFormat, ext, fname)
	}
	return et, nil
}

// Read decodes from the given reader using the decoder for the extension
// of fname. The file itself is not opened.
func Read(fname string, r io.Reader) (*Data, error) {
	dec, err := decoderFor(fname)
	if err != nil {
		return nil, err
	}
	return dec.Decode(r)
}

// DecodeFile decodes the given file using the decoder for its extension.
func DecodeFile(fname string) (*Data, error) {
	dec, err := decoderFor(fname)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return d, nil
}

// Write encodes to the given writer using the encoder for the extension
// of fname.
func Write(fname string, w io.Writer, positions []math32.Vector3, faces [][]int) error {
	enc, err := encoderFor(fname)
	if err != nil {
		return err
	}
	return enc.Encode(w, positions, faces)
}

// EncodeFile writes the given file using the encoder for its extension.
func EncodeFile(fname string, positions []math32.Vector3, faces [][]int) error {
	enc, err := encoderFor(fname)
	if err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = enc.Encode(bw, positions, faces)
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, f.Close())
}

// Open decodes the given file and builds a halfedge mesh from it.
func Open(fname string, twins halfedge.TwinStrategy) (*halfedge.Mesh, error) {
	d, err := DecodeFile(fname)
	if err != nil {
		return nil, err
	}
	for _, w := range d.Warnings {
		slog.Warn("meshio: "+w, "file", fname)
	}
	return halfedge.Build(d.Positions, d.Indices, twins)
}

// Save writes the live vertices and faces of the given mesh to the given file.
func Save(fname string, m *halfedge.Mesh) error {
	return EncodeFile(fname, m.Positions(), m.FaceLoops())
}

// lineParser reads a text mesh format line by line, tracking the line
// number for error messages.
type lineParser struct {
	line int
}

// parse reads the lines from the given reader and passes the
// whitespace separated fields of each one to parseLine. Empty lines
// and comments starting with # are skipped.
func (lp *lineParser) parse(r io.Reader, parseLine func(fields []string) error) error {
	bufin := bufio.NewReader(r)
	lp.line = 0
	for {
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		lp.line++
		if ci := strings.IndexByte(line, '#'); ci >= 0 {
			line = line[:ci]
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			if perr := parseLine(fields); perr != nil {
				return lp.formatError(perr)
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func (lp *lineParser) formatError(err error) error {
	return fmt.Errorf("line %d: %w", lp.line, err)
}

// addFace appends the triangles of the given face to indices: the face
// itself if it is a triangle, otherwise a fan around its first corner
// when triangulate is set, or [halfedge.ErrNotTriangle].
func addFace(indices []int, face []int, triangulate bool) ([]int, error) {
	switch {
	case len(face) < 3:
		return indices, fmt.Errorf("%w: face with %d corners", halfedge.ErrNotTriangle, len(face))
	case len(face) > 3 && !triangulate:
		return indices, fmt.Errorf("%w: face with %d corners (enable triangulation to split it)", halfedge.ErrNotTriangle, len(face))
	}
	for i := 1; i+1 < len(face); i++ {
		indices = append(indices, face[0], face[i], face[i+1])
	}
	return indices, nil
}

// checkIndices returns an error for any index out of range of n positions.
func checkIndices(indices []int, n int) error {
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: corner %d of triangle %d refers to vertex %d of %d", halfedge.ErrInvalidIndex, i%3, i/3, idx, n)
		}
	}
	return nil
}
