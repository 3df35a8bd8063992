// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Dir   string `toml:"dir"`
	Sizes []int  `toml:"sizes"`
	Style string `toml:"style"`
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "config.toml")

	want := testConfig{Dir: "icons", Sizes: []int{16, 32, 512}, Style: "walnut"}
	assert.NoError(t, Save(&want, fp))

	var got testConfig
	assert.NoError(t, Open(&got, fp))
	assert.Equal(t, want, got)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "override.toml")

	assert.NoError(t, os.WriteFile(base, []byte("dir = \"icons\"\nstyle = \"walnut\"\n"), 0o666))
	assert.NoError(t, os.WriteFile(over, []byte("style = \"squirrel\"\n"), 0o666))

	var got testConfig
	assert.NoError(t, OpenFiles(&got, base, over))
	assert.Equal(t, "icons", got.Dir)
	assert.Equal(t, "squirrel", got.Style)
}

func TestOpenFilesMissing(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.toml")
	assert.NoError(t, os.WriteFile(ok, []byte("dir = \"out\"\n"), 0o666))

	// a missing file is not an error as long as one file is read
	var got testConfig
	assert.NoError(t, OpenFiles(&got, filepath.Join(dir, "missing.toml"), ok))
	assert.Equal(t, "out", got.Dir)

	// but all files missing is
	var none testConfig
	assert.Error(t, OpenFiles(&none, filepath.Join(dir, "missing.toml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte("dir = \"out\"\n")},
	}
	var got testConfig
	assert.NoError(t, OpenFS(&got, fsys, "config.toml"))
	assert.Equal(t, "out", got.Dir)

	assert.Error(t, OpenFS(&got, fsys, "missing.toml"))
}

func TestReadBytes(t *testing.T) {
	var got testConfig
	assert.NoError(t, ReadBytes(&got, []byte("sizes = [16, 32]\n")))
	assert.Equal(t, []int{16, 32}, got.Sizes)

	assert.Error(t, ReadBytes(&got, []byte("sizes = [16,")))
}

func TestWriteBytes(t *testing.T) {
	b, err := WriteBytes(&testConfig{Dir: "icons"})
	assert.NoError(t, err)
	assert.Contains(t, string(b), "dir = ")
	assert.Contains(t, string(b), "icons")
}
