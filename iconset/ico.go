// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"bufio"
	"image"
	"os"
	"slices"

	ico "github.com/sergeymakinen/go-ico"
)

// icoSizes are the resolutions bundled into the .ico container,
// chosen for Windows shell compatibility.
var icoSizes = []int{16, 32, 48, 256}

// icoAssembler writes a multi-resolution Windows .ico file.
type icoAssembler struct{}

func (ia *icoAssembler) Sizes() []int {
	return slices.Clone(icoSizes)
}

func (ia *icoAssembler) Assemble(dst string, images []image.Image) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	return ico.EncodeAll(bw, images)
}
