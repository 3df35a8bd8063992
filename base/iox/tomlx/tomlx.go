// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML encoding and decoding helpers.
package tomlx

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
func Open(v any, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Read(v, bufio.NewReader(file))
}

// OpenFiles reads the given object from the given filenames using TOML encoding,
// with later files taking precedence over earlier ones for values set in both.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	got := false
	for _, file := range filenames {
		err := Open(v, file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = true
	}
	if !got && len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// OpenFS reads the given object from the given filename using TOML encoding,
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(v any, fsys fs.FS, filename string) error {
	file, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Read(v, bufio.NewReader(file))
}

// Read reads the given object from the given reader using TOML encoding.
func Read(v any, reader io.Reader) error {
	d := toml.NewDecoder(reader)
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
func ReadBytes(v any, b []byte) error {
	return toml.Unmarshal(b, v)
}

// Save writes the given object to the given filename using TOML encoding.
func Save(v any, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	defer bw.Flush()
	return Write(v, bw)
}

// Write writes the given object to the given writer using TOML encoding.
func Write(v any, writer io.Writer) error {
	e := toml.NewEncoder(writer)
	return e.Encode(v)
}

// WriteBytes writes the given object to bytes using TOML encoding.
func WriteBytes(v any) ([]byte, error) {
	return toml.Marshal(v)
}
