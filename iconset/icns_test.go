// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walnutbook/icongen/base/errors"
)

func stagingImages() []image.Image {
	images := make([]image.Image, len(iconsetEntries))
	for i, e := range iconsetEntries {
		images[i] = image.NewRGBA(image.Rect(0, 0, e.Size, e.Size))
	}
	return images
}

func TestIconutilEntries(t *testing.T) {
	ia := &iconutilAssembler{}
	sizes := ia.Sizes()
	require.Len(t, sizes, 10)

	seen := map[string]bool{}
	for i, e := range iconsetEntries {
		assert.Equal(t, e.Size, sizes[i])
		assert.False(t, seen[e.Name], "duplicate name %s", e.Name)
		seen[e.Name] = true
	}
}

func TestIconutilMissing(t *testing.T) {
	dir := t.TempDir()
	ia := &iconutilAssembler{
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	err := ia.Assemble(filepath.Join(dir, "icon.icns"), stagingImages())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolMissing)

	// nothing is staged when the tool is missing
	_, err = os.Stat(filepath.Join(dir, "icon.iconset"))
	assert.True(t, os.IsNotExist(err))
}

func TestIconutilStaging(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "icon.icns")

	var gotCmd string
	var gotArgs []string
	ia := &iconutilAssembler{
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		run: func(cmd string, args ...string) error {
			gotCmd = cmd
			gotArgs = args
			return nil
		},
	}
	require.NoError(t, ia.Assemble(dst, stagingImages()))

	sdir := filepath.Join(dir, "icon.iconset")
	for _, e := range iconsetEntries {
		fi, err := os.Stat(filepath.Join(sdir, e.Name))
		require.NoError(t, err, e.Name)
		assert.Greater(t, fi.Size(), int64(0))
	}
	assert.Equal(t, "iconutil", gotCmd)
	assert.Equal(t, []string{"-c", "icns", sdir, "-o", dst}, gotArgs)
}

func TestIconutilRunFailure(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("exit status 1")
	ia := &iconutilAssembler{
		lookPath: func(file string) (string, error) { return file, nil },
		run:      func(string, ...string) error { return boom },
	}
	err := ia.Assemble(filepath.Join(dir, "icon.icns"), stagingImages())
	assert.ErrorIs(t, err, boom)
}

func TestPlatformFilename(t *testing.T) {
	assert.Equal(t, "icon.ico", Windows.Filename())
	assert.Equal(t, "icon.icns", MacOS.Filename())
	assert.Equal(t, "", Platform("beos").Filename())
}
