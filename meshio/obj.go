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

// OBJDecoder decodes the Wavefront OBJ format. Only vertex positions
// and faces are used: normals and texture coordinates are counted so
// that relative indexes work, and everything else is skipped with a
// warning. Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
type OBJDecoder struct {
	// Triangulate splits faces with more than three corners into a fan
	// of triangles. Otherwise such faces are an error.
	Triangulate bool

	lineParser
	data    *Data
	normals int
	uvs     int
}

func (dec *OBJDecoder) New() Decoder {
	return &OBJDecoder{Triangulate: dec.Triangulate}
}

func (dec *OBJDecoder) Desc() string {
	return "Wavefront OBJ"
}

func (dec *OBJDecoder) Decode(r io.Reader) (*Data, error) {
	dec.data = &Data{}
	dec.normals, dec.uvs = 0, 0
	if err := dec.parse(r, dec.parseLine); err != nil {
		return nil, err
	}
	if err := checkIndices(dec.data.Indices, len(dec.data.Positions)); err != nil {
		return nil, err
	}
	return dec.data, nil
}

func (dec *OBJDecoder) parseLine(fields []string) error {
	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "vn":
		dec.normals++
	case "vt":
		dec.uvs++
	case "f":
		return dec.parseFace(fields[1:])
	// grouping and materials have no meaning for a bare mesh
	case "o", "g", "s", "mtllib", "usemtl":
	default:
		dec.data.Warnings = append(dec.data.Warnings, fmt.Sprintf("line %d: field not supported: %s", dec.line, fields[0]))
	}
	return nil
}

// parseVertex parses a vertex position line:
// v <x> <y> <z> [w]
func (dec *OBJDecoder) parseVertex(fields []string) error {
	p, err := parseVector(fields)
	if err != nil {
		return fmt.Errorf("'v' line: %w", err)
	}
	dec.data.Positions = append(dec.data.Positions, p)
	return nil
}

// parseFace parses a face line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
// Only the position index of each corner is kept.
func (dec *OBJDecoder) parseFace(fields []string) error {
	face := make([]int, len(fields))
	for i, f := range fields {
		parts := strings.Split(f, "/")
		idx, err := dec.index(parts[0], len(dec.data.Positions))
		if err != nil {
			return err
		}
		face[i] = idx
		if len(parts) > 1 && parts[1] != "" {
			if _, err := dec.index(parts[1], dec.uvs); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if _, err := dec.index(parts[2], dec.normals); err != nil {
				return err
			}
		}
	}
	var err error
	dec.data.Indices, err = addFace(dec.data.Indices, face, dec.Triangulate)
	return err
}

// index parses a 1-based OBJ index, where negative values count back
// from the last of the n elements defined so far, and returns it 0-based.
func (dec *OBJDecoder) index(s string, n int) (int, error) {
	val, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return 0, err
	case val > 0:
		return val - 1, nil
	case val < 0:
		return n + val, nil
	}
	return 0, errors.New("face index value equal to 0")
}

// parseVector parses the first three fields as a vector.
func parseVector(fields []string) (math32.Vector3, error) {
	if len(fields) < 3 {
		return math32.Vector3{}, fmt.Errorf("%d coordinates instead of 3", len(fields))
	}
	var c [3]float32
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math32.Vector3{}, err
		}
		c[i] = float32(val)
	}
	return math32.Vec3(c[0], c[1], c[2]), nil
}

// OBJEncoder encodes the Wavefront OBJ format, writing one "v" line per
// position and one "f" line per face, with 1-based indexes.
type OBJEncoder struct{}

func (enc *OBJEncoder) Desc() string {
	return "Wavefront OBJ"
}

func (enc *OBJEncoder) Encode(w io.Writer, positions []math32.Vector3, faces [][]int) error {
	for _, p := range positions {
		if _, err := fmt.Fprintf(w, "v %v\n", p); err != nil {
			return err
		}
	}
	var sb strings.Builder
	for _, face := range faces {
		sb.Reset()
		sb.WriteString("f")
		for _, v := range face {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(v + 1))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
