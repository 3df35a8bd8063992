// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iconset exports the WalnutBook application icon at every
// size the packaging tool consumes, and assembles the platform icon
// containers (.ico, .icns) from the same artwork.
package iconset

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"github.com/walnutbook/icongen/base/errors"
	"github.com/walnutbook/icongen/base/fsx"
	"github.com/walnutbook/icongen/base/iox/imagex"
	"github.com/walnutbook/icongen/base/logx"
	"github.com/walnutbook/icongen/icon"
)

// MasterSize is the canonical master resolution. The fixed-name
// outputs (icon.png, StoreLogo.png) are written at this size.
const MasterSize = 512

// DefaultSizes are the square resolutions the Tauri packaging tool
// consumes, one {N}x{N}.png each.
var DefaultSizes = []int{16, 32, 44, 71, 89, 107, 128, 142, 150, 256, 284, 310, 512}

var (
	// ErrMissingSource indicates the configured source image does not exist.
	ErrMissingSource = errors.New("iconset: source image not found")

	// ErrToolMissing indicates a required system packaging tool is not installed.
	ErrToolMissing = errors.New("iconset: packaging tool missing")
)

// Config holds the export configuration.
type Config struct {

	// Dir is the output directory for all generated files.
	Dir string `toml:"dir"`

	// Sizes are the square pixel sizes to render, one {N}x{N}.png each.
	Sizes []int `toml:"sizes"`

	// Style is the name of the logo style to render.
	// The available styles are given by [icon.StyleNames].
	Style string `toml:"style"`

	// Source is an optional source image filename; when set, outputs
	// are resized from it instead of rendered procedurally.
	Source string `toml:"source"`

	// Containers are the platform containers to assemble after the
	// PNG set is written.
	Containers []Platform `toml:"containers"`

	// Iconutil makes the macOS container run the system iconutil
	// tool instead of encoding the icns file directly.
	Iconutil bool `toml:"iconutil"`

	// Renderer, if set, is used instead of looking up Style by name.
	Renderer icon.Style `toml:"-"`

	// Assemblers, if set, override the container assembler per platform.
	Assemblers map[Platform]Assembler `toml:"-"`
}

// DefaultConfig returns the standard configuration: every packaging
// tool size, the walnut style, and both platform containers, under
// the icons directory.
func DefaultConfig() *Config {
	return &Config{
		Dir:        "icons",
		Sizes:      slices.Clone(DefaultSizes),
		Style:      "walnut",
		Containers: []Platform{Windows, MacOS},
	}
}

// Result reports what an export run produced.
type Result struct {

	// Written lists every file written, in the order written.
	Written []string

	// Problems lists the non-fatal problems encountered while
	// assembling platform containers.
	Problems []error
}

// Export writes the icon set per the given configuration: one
// {N}x{N}.png per configured size, icon.png and StoreLogo.png at
// [MasterSize], then the configured platform containers. Existing
// files are overwritten. A failure to write a PNG aborts the run;
// container assembly failures are reported in [Result.Problems] and
// do not fail the run.
func Export(cfg *Config) (*Result, error) {
	p, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0777); err != nil {
		return nil, err
	}
	res := &Result{}
	save := func(size int, name string) error {
		im, err := p.at(size)
		if err != nil {
			return err
		}
		fp := filepath.Join(cfg.Dir, name)
		if err := imagex.Save(im, fp); err != nil {
			return err
		}
		res.Written = append(res.Written, fp)
		logx.PrintlnDebug("wrote", fp)
		return nil
	}
	for _, size := range cfg.Sizes {
		if err := save(size, fmt.Sprintf("%dx%d.png", size, size)); err != nil {
			return res, err
		}
	}
	// fixed-name masters for the packaging tool
	if err := save(MasterSize, "icon.png"); err != nil {
		return res, err
	}
	if err := save(MasterSize, "StoreLogo.png"); err != nil {
		return res, err
	}
	for _, platform := range cfg.Containers {
		fp, err := assemble(cfg, p, platform)
		if err != nil {
			res.Problems = append(res.Problems, fmt.Errorf("%s: %w", platform, err))
			continue
		}
		res.Written = append(res.Written, fp)
		logx.PrintlnDebug("wrote", fp)
	}
	return res, nil
}

// Assemble produces the given platform's icon container under
// cfg.Dir, returning the path written.
func Assemble(cfg *Config, platform Platform) (string, error) {
	p, err := newProvider(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfg.Dir, 0777); err != nil {
		return "", err
	}
	return assemble(cfg, p, platform)
}

// provider produces the icon image at each requested size, either by
// rendering a style or by resizing a source image, caching repeats.
type provider struct {
	sty    icon.Style
	src    image.Image
	images map[int]image.Image
}

func newProvider(cfg *Config) (*provider, error) {
	p := &provider{images: map[int]image.Image{}}
	if cfg.Source != "" {
		src, err := openSource(cfg.Source)
		if err != nil {
			return nil, err
		}
		p.src = src
		return p, nil
	}
	sty := cfg.Renderer
	if sty == nil {
		var err error
		sty, err = icon.StyleByName(cfg.Style)
		if err != nil {
			return nil, err
		}
	}
	p.sty = sty
	return p, nil
}

// at returns the icon at the given size.
func (p *provider) at(size int) (image.Image, error) {
	if im, ok := p.images[size]; ok {
		return im, nil
	}
	var im image.Image
	var err error
	if p.src != nil {
		im = scale(p.src, size)
	} else {
		im, err = icon.Render(p.sty, size)
		if err != nil {
			return nil, err
		}
	}
	p.images[size] = im
	return im, nil
}

// openSource opens and decodes the source image, sniffing its content
// type. A missing file is reported as [ErrMissingSource].
func openSource(path string) (image.Image, error) {
	if ok, _ := fsx.FileExists(path); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if kind, _ := filetype.Match(b); kind != types.Unknown && kind.Extension != "png" {
		logx.PrintlnWarn("iconset: source", path, "is", kind.Extension+",", "not png")
	}
	im, _, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("iconset: decoding source %s: %w", path, err)
	}
	return im, nil
}
