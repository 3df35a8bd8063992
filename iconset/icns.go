// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/jackmordaunt/icns/v2"

	"github.com/walnutbook/icongen/base/exec"
	"github.com/walnutbook/icongen/base/iox/imagex"
)

// icnsMasterSize is the resolution the .icns container is encoded
// from; 1024x1024 is the largest icon size on macOS.
const icnsMasterSize = 1024

// icnsAssembler writes the macOS .icns container directly, deriving
// every required resolution from one master image. It works on any
// host platform.
type icnsAssembler struct{}

func (ia *icnsAssembler) Sizes() []int {
	return []int{icnsMasterSize}
}

func (ia *icnsAssembler) Assemble(dst string, images []image.Image) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	return icns.Encode(f, images[0])
}

// iconsetEntries are the filenames Apple's iconutil expects in an
// .iconset directory, with the pixel size of each.
var iconsetEntries = []struct {
	Size int
	Name string
}{
	{16, "icon_16x16.png"},
	{32, "icon_16x16@2x.png"},
	{32, "icon_32x32.png"},
	{64, "icon_32x32@2x.png"},
	{128, "icon_128x128.png"},
	{256, "icon_128x128@2x.png"},
	{256, "icon_256x256.png"},
	{512, "icon_256x256@2x.png"},
	{512, "icon_512x512.png"},
	{1024, "icon_512x512@2x.png"},
}

// iconutilAssembler stages an .iconset directory and runs the macOS
// iconutil tool to produce the .icns container. The staged directory
// is left in place for inspection.
type iconutilAssembler struct {

	// lookPath and run are swappable for testing; they default to
	// [exec.LookPath] and [exec.Run].
	lookPath func(file string) (string, error)
	run      func(cmd string, args ...string) error
}

func (ia *iconutilAssembler) Sizes() []int {
	sizes := make([]int, len(iconsetEntries))
	for i, e := range iconsetEntries {
		sizes[i] = e.Size
	}
	return sizes
}

func (ia *iconutilAssembler) Assemble(dst string, images []image.Image) error {
	lookPath, run := ia.lookPath, ia.run
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if run == nil {
		run = exec.Run
	}
	if _, err := lookPath("iconutil"); err != nil {
		return fmt.Errorf("%w: iconutil not found, make sure you are on macOS", ErrToolMissing)
	}
	sdir := filepath.Join(filepath.Dir(dst), "icon.iconset")
	if err := os.MkdirAll(sdir, 0777); err != nil {
		return err
	}
	for i, e := range iconsetEntries {
		if err := imagex.Save(images[i], filepath.Join(sdir, e.Name)); err != nil {
			return err
		}
	}
	return run("iconutil", "-c", "icns", sdir, "-o", dst)
}
