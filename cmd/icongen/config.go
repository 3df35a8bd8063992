// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/walnutbook/icongen/base/errors"
	"github.com/walnutbook/icongen/base/fsx"
	"github.com/walnutbook/icongen/base/iox/tomlx"
	"github.com/walnutbook/icongen/base/logx"
	"github.com/walnutbook/icongen/icon"
	"github.com/walnutbook/icongen/iconset"
)

// configFlags holds the export configuration flags shared by the
// export, ico, icns, watch, and doctor commands.
type configFlags struct {
	config     string
	dir        string
	style      string
	source     string
	sizes      string
	containers string
	iconutil   bool
}

func (cf *configFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&cf.config, "config", "", "TOML config `file` (default "+defaultConfigFile+" if present)")
	fs.StringVar(&cf.dir, "dir", "", "output `directory` for generated files")
	fs.StringVar(&cf.style, "style", "", "logo style: "+strings.Join(icon.StyleNames(), ", "))
	fs.StringVar(&cf.source, "source", "", "source image `file` to resize instead of rendering")
	fs.StringVar(&cf.sizes, "sizes", "", "comma-separated `list` of pixel sizes")
	fs.StringVar(&cf.containers, "containers", "", "comma-separated `list` of containers (windows, macos), or none")
	fs.BoolVar(&cf.iconutil, "iconutil", false, "assemble the icns container with the macOS iconutil tool")
}

// configFile is the config file that resolve will read, and whether
// the user named it explicitly.
func (cf *configFlags) configFile() (file string, explicit bool) {
	if cf.config != "" {
		return cf.config, true
	}
	return defaultConfigFile, false
}

// resolve produces the final configuration: the defaults, overlaid by
// the config file when one is present, overlaid by any flags set on
// the command line.
func (cf *configFlags) resolve(fs *flag.FlagSet) (*iconset.Config, error) {
	cfg := iconset.DefaultConfig()
	file, explicit := cf.configFile()
	if ok, _ := fsx.FileExists(file); ok {
		err := tomlx.Open(cfg, file)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
		logx.PrintlnDebug("read config from", file)
	} else if explicit {
		return nil, fmt.Errorf("config file %s not found", file)
	}
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = cf.dir
		case "style":
			cfg.Style = cf.style
		case "source":
			cfg.Source = cf.source
		case "sizes":
			sizes, err := parseSizes(cf.sizes)
			if err != nil {
				ferr = err
				return
			}
			cfg.Sizes = sizes
		case "containers":
			cs, err := parseContainers(cf.containers)
			if err != nil {
				ferr = err
				return
			}
			cfg.Containers = cs
		case "iconutil":
			cfg.Iconutil = cf.iconutil
		}
	})
	if ferr != nil {
		return nil, ferr
	}
	cfg.Dir = fsx.ExpandHome(cfg.Dir)
	if cfg.Source != "" {
		cfg.Source = fsx.ExpandHome(cfg.Source)
	}
	return cfg, nil
}

// parseSizes parses a comma-separated list of positive pixel sizes.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return sizes, nil
}

// parseContainers parses a comma-separated list of platform names.
// The special value "none" disables container assembly entirely.
func parseContainers(s string) ([]iconset.Platform, error) {
	if strings.TrimSpace(s) == "none" {
		return []iconset.Platform{}, nil
	}
	var ps []iconset.Platform
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		p := iconset.Platform(f)
		switch p {
		case iconset.Windows, iconset.MacOS:
			ps = append(ps, p)
		default:
			return nil, fmt.Errorf("unknown platform %q", f)
		}
	}
	return ps, nil
}
