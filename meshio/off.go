// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/subdivide/base/errors"
	"cogentcore.org/subdivide/math32"
)

// OFFDecoder decodes the Object File Format: an OFF header, a line with
// the vertex, face and edge counts, then one line of coordinates per
// vertex and one line per face with its corner count followed by
// 0-based vertex indexes. Colors after the face indexes are ignored.
type OFFDecoder struct {
	// Triangulate splits faces with more than three corners into a fan
	// of triangles. Otherwise such faces are an error.
	Triangulate bool

	lineParser
	data      *Data
	header    bool
	nVertices int
	nFaces    int
	faces     int
}

func (dec *OFFDecoder) New() Decoder {
	return &OFFDecoder{Triangulate: dec.Triangulate}
}

func (dec *OFFDecoder) Desc() string {
	return "Object File Format"
}

func (dec *OFFDecoder) Decode(r io.Reader) (*Data, error) {
	dec.data = &Data{}
	dec.header = false
	dec.nVertices, dec.nFaces, dec.faces = -1, -1, 0
	if err := dec.parse(r, dec.parseLine); err != nil {
		return nil, err
	}
	switch {
	case !dec.header:
		return nil, errors.New("missing OFF header")
	case dec.nVertices < 0:
		return nil, errors.New("missing vertex and face counts")
	case len(dec.data.Positions) != dec.nVertices || dec.faces != dec.nFaces:
		return nil, fmt.Errorf("found %d vertices and %d faces, header says %d and %d",
			len(dec.data.Positions), dec.faces, dec.nVertices, dec.nFaces)
	}
	if err := checkIndices(dec.data.Indices, len(dec.data.Positions)); err != nil {
		return nil, err
	}
	return dec.data, nil
}

func (dec *OFFDecoder) parseLine(fields []string) error {
	if !dec.header {
		if fields[0] != "OFF" {
			return fmt.Errorf("expected OFF header, got %q", fields[0])
		}
		dec.header = true
		// the counts may follow on the same line
		if len(fields) == 1 {
			return nil
		}
		fields = fields[1:]
	}
	switch {
	case dec.nVertices < 0:
		return dec.parseCounts(fields)
	case len(dec.data.Positions) < dec.nVertices:
		p, err := parseVector(fields)
		if err != nil {
			return fmt.Errorf("vertex %d: %w", len(dec.data.Positions), err)
		}
		dec.data.Positions = append(dec.data.Positions, p)
		return nil
	case dec.faces < dec.nFaces:
		return dec.parseFace(fields)
	}
	return fmt.Errorf("unexpected data after %d faces", dec.nFaces)
}

// parseCounts parses the counts line:
// <vertices> <faces> [edges]
func (dec *OFFDecoder) parseCounts(fields []string) error {
	if len(fields) < 2 {
		return errors.New("counts line needs vertex and face counts")
	}
	nv, err := strconv.Atoi(fields[0])
	if err != nil {
		return err
	}
	nf, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	if nv < 0 || nf < 0 {
		return fmt.Errorf("negative counts %d and %d", nv, nf)
	}
	dec.nVertices, dec.nFaces = nv, nf
	return nil
}

// parseFace parses a face line:
// <n> <v1> <v2> ... <vn> [color]
func (dec *OFFDecoder) parseFace(fields []string) error {
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return err
	}
	if n < 0 || len(fields) < n+1 {
		return fmt.Errorf("face %d: %d indexes for %d corners", dec.faces, len(fields)-1, n)
	}
	face := make([]int, n)
	for i, f := range fields[1 : n+1] {
		if face[i], err = strconv.Atoi(f); err != nil {
			return err
		}
	}
	dec.faces++
	dec.data.Indices, err = addFace(dec.data.Indices, face, dec.Triangulate)
	return err
}

// OFFEncoder encodes the Object File Format.
type OFFEncoder struct{}

func (enc *OFFEncoder) Desc() string {
	return "Object File Format"
}

func (enc *OFFEncoder) Encode(w io.Writer, positions []math32.Vector3, faces [][]int) error {
	edges := 0
	for _, face := range faces {
		edges += len(face)
	}
	// every edge of a closed mesh is shared by two faces
	if _, err := fmt.Fprintf(w, "OFF\n%d %d %d\n", len(positions), len(faces), edges/2); err != nil {
		return err
	}
	for _, p := range positions {
		if _, err := fmt.Fprintf(w, "%v\n", p); err != nil {
			return err
		}
	}
	var sb strings.Builder
	for _, face := range faces {
		sb.Reset()
		sb.WriteString(strconv.Itoa(len(face)))
		for _, v := range face {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
