// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walnutbook/icongen/base/iox/imagex"
	"github.com/walnutbook/icongen/icon"
	"github.com/walnutbook/icongen/iconset"
)

// noSystemFonts keeps the tests independent of whatever fonts the
// machine has installed.
func noSystemFonts(t *testing.T) {
	t.Helper()
	saved := icon.FontPaths
	icon.FontPaths = nil
	t.Cleanup(func() {
		icon.FontPaths = saved
	})
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("16,32, 512")
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32, 512}, sizes)

	_, err = parseSizes("16,twenty")
	assert.Error(t, err)

	_, err = parseSizes("0")
	assert.Error(t, err)

	_, err = parseSizes("-4")
	assert.Error(t, err)

	_, err = parseSizes("")
	assert.Error(t, err)
}

func TestParseContainers(t *testing.T) {
	cs, err := parseContainers("windows,macos")
	require.NoError(t, err)
	assert.Equal(t, []iconset.Platform{iconset.Windows, iconset.MacOS}, cs)

	cs, err = parseContainers("none")
	require.NoError(t, err)
	assert.Empty(t, cs)

	_, err = parseContainers("beos")
	assert.Error(t, err)
}

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "icongen.toml")
	require.NoError(t, os.WriteFile(fp, []byte("dir = \"assets\"\nstyle = \"squirrel\"\nsizes = [16, 32]\n"), 0666))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cf := &configFlags{}
	cf.bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", fp, "-dir", "override"}))

	cfg, err := cf.resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Dir)
	assert.Equal(t, "squirrel", cfg.Style)
	assert.Equal(t, []int{16, 32}, cfg.Sizes)
	assert.Equal(t, iconset.DefaultConfig().Containers, cfg.Containers)
}

func TestResolveMissingConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cf := &configFlags{}
	cf.bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.toml")}))

	_, err := cf.resolve(fs)
	assert.Error(t, err)
}

func TestResolveBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cf := &configFlags{}
	cf.bind(fs)
	require.NoError(t, fs.Parse([]string{"-sizes", "huge"}))

	_, err := cf.resolve(fs)
	assert.Error(t, err)
}

func TestRunVersion(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
}

func TestRunHelp(t *testing.T) {
	assert.Equal(t, 0, run([]string{"help"}))
}

func TestRunUnknown(t *testing.T) {
	assert.Equal(t, 2, run([]string{"frobnicate"}))
}

func TestRunRender(t *testing.T) {
	noSystemFonts(t)
	fp := filepath.Join(t.TempDir(), "icon.png")
	require.Equal(t, 0, run([]string{"render", "-size", "16", "-style", "splash", "-o", fp}))

	img, _, err := imagex.Open(fp)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestRunRenderBadStyle(t *testing.T) {
	assert.Equal(t, 1, run([]string{"render", "-style", "acorn"}))
}

func TestRunExport(t *testing.T) {
	noSystemFonts(t)
	dir := filepath.Join(t.TempDir(), "icons")
	require.Equal(t, 0, run([]string{"export", "-dir", dir, "-sizes", "16", "-containers", "none"}))

	for _, name := range []string{"16x16.png", "icon.png", "StoreLogo.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunExportMissingSource(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"export", "-dir", dir, "-source", filepath.Join(dir, "nope.png")})
	assert.Equal(t, 1, code)
}
