// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"strings"

	"github.com/walnutbook/icongen/base/exec"
	"github.com/walnutbook/icongen/base/fsx"
	"github.com/walnutbook/icongen/base/logx"
	"github.com/walnutbook/icongen/icon"
)

// cmdDoctor reports what this system can generate with the resolved
// configuration.
func cmdDoctor(args []string) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	cf := &configFlags{}
	cf.bind(fs)
	err := fs.Parse(args)
	if err != nil {
		return 2
	}
	cfg, err := cf.resolve(fs)
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}

	logx.PrintlnInfo(logx.TitleColor("icongen doctor"))
	logx.PrintlnInfo("styles:", strings.Join(icon.StyleNames(), ", "))

	if path, ok := icon.FindSystemFont(); ok {
		logx.PrintlnInfo("system font:", logx.SuccessColor(path))
	} else {
		logx.PrintlnInfo("system font: none, the embedded Go font will be used")
	}

	if path, err := exec.LookPath("iconutil"); err == nil {
		logx.PrintlnInfo("iconutil:", logx.SuccessColor(path))
	} else {
		logx.PrintlnInfo("iconutil: not found, icns files will be encoded directly")
	}

	if cfg.Source != "" {
		if ok, _ := fsx.FileExists(cfg.Source); ok {
			logx.PrintlnInfo("source image:", logx.SuccessColor(cfg.Source))
		} else {
			logx.PrintlnWarn("source image:", cfg.Source, "is missing")
		}
	}

	if ok, _ := fsx.DirExists(cfg.Dir); ok {
		logx.PrintlnInfo("output dir:", cfg.Dir, "(exists)")
	} else {
		logx.PrintlnInfo("output dir:", cfg.Dir, "(will be created)")
	}
	return 0
}
