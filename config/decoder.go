// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from the io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// Decoders are the config file decoders, indexed by file extension.
// Unknown fields are an error in both formats.
var Decoders = map[string]DecoderFunc{
	".toml": func(r io.Reader) Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	},
	".yaml": newYAMLDecoder,
	".yml":  newYAMLDecoder,
}

func newYAMLDecoder(r io.Reader) Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// DecoderFor returns the decoder for the extension of the given file name.
func DecoderFor(filename string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("config: unsupported file extension %q of %s (use .toml or .yaml)", ext, filename)
	}
	return f, nil
}

// OpenFile reads v from the given file, using the decoder for its extension.
func OpenFile(v any, filename string) error {
	f, err := DecoderFor(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp), f); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Read reads v from the given reader, using the given [DecoderFunc].
// An empty document leaves v unchanged.
func Read(v any, reader io.Reader, f DecoderFunc) error {
	err := f(reader).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// ReadBytes reads v from the given bytes, using the given [DecoderFunc].
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}
