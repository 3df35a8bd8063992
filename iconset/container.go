// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"fmt"
	"image"
	"path/filepath"
)

// Platform names an icon container target.
type Platform string

const (
	// Windows is the multi-resolution .ico container.
	Windows Platform = "windows"

	// MacOS is the .icns container.
	MacOS Platform = "macos"
)

// Filename returns the conventional container filename for the platform.
func (p Platform) Filename() string {
	switch p {
	case Windows:
		return "icon.ico"
	case MacOS:
		return "icon.icns"
	}
	return ""
}

// Assembler bundles rendered images into one platform container file.
// Implementations for platforms without their packaging tool installed
// can be replaced with stubs in tests via [Config.Assemblers].
type Assembler interface {

	// Sizes returns the image sizes the container needs, in order.
	Sizes() []int

	// Assemble writes the container to the given path from the given
	// images, which correspond one to one with Sizes.
	Assemble(dst string, images []image.Image) error
}

// assemblerFor returns the assembler serving the given platform.
func assemblerFor(cfg *Config, platform Platform) (Assembler, error) {
	if a, ok := cfg.Assemblers[platform]; ok {
		return a, nil
	}
	switch platform {
	case Windows:
		return &icoAssembler{}, nil
	case MacOS:
		if cfg.Iconutil {
			return &iconutilAssembler{}, nil
		}
		return &icnsAssembler{}, nil
	}
	return nil, fmt.Errorf("iconset: unknown platform %q", platform)
}

func assemble(cfg *Config, p *provider, platform Platform) (string, error) {
	asm, err := assemblerFor(cfg, platform)
	if err != nil {
		return "", err
	}
	var images []image.Image
	for _, size := range asm.Sizes() {
		im, err := p.at(size)
		if err != nil {
			return "", err
		}
		images = append(images, im)
	}
	dst := filepath.Join(cfg.Dir, platform.Filename())
	if err := asm.Assemble(dst, images); err != nil {
		return "", err
	}
	return dst, nil
}
