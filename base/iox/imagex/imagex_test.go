// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testImage returns a small image with a distinct pixel pattern.
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 60), uint8(y * 60), 100, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".png")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)

	f, err = ExtToFormat("JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)

	_, err = ExtToFormat("")
	assert.Error(t, err)

	_, err = ExtToFormat(".ico")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "test.png")

	img := testImage()
	assert.NoError(t, Save(img, fp))

	got, f, err := Open(fp)
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, img.Bounds(), got.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, img.At(x, y), color.RGBAModel.Convert(got.At(x, y)))
		}
	}
}

func TestOpenFS(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, Save(testImage(), filepath.Join(dir, "t.png")))

	img, f, err := OpenFS(os.DirFS(dir), "t.png")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestSaveUnknownExt(t *testing.T) {
	dir := t.TempDir()
	err := Save(testImage(), filepath.Join(dir, "test.xyz"))
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestAsRGBA(t *testing.T) {
	img := testImage()
	assert.Same(t, img, AsRGBA(img))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	conv := AsRGBA(gray)
	assert.NotNil(t, conv)
	assert.Equal(t, gray.Bounds(), conv.Bounds())

	assert.Nil(t, AsRGBA(nil))
}

func TestCompareColors(t *testing.T) {
	a := color.RGBA{100, 100, 100, 255}
	b := color.RGBA{101, 99, 100, 255}
	assert.True(t, CompareColors(a, b, 1))
	assert.False(t, CompareColors(a, b, 0))
}
