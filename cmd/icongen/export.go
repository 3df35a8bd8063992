// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/walnutbook/icongen/base/fsx"
	"github.com/walnutbook/icongen/base/iox/imagex"
	"github.com/walnutbook/icongen/base/logx"
	"github.com/walnutbook/icongen/icon"
	"github.com/walnutbook/icongen/iconset"
)

func cmdExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
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
	return export(cfg)
}

// export runs one export and reports the outcome, returning the
// process exit status. Container problems are warnings, not failures.
func export(cfg *iconset.Config) int {
	res, err := iconset.Export(cfg)
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}
	for _, p := range res.Problems {
		logx.PrintlnWarn("icongen:", p.Error())
	}
	logx.PrintlnInfo(logx.SuccessColor("wrote"), len(res.Written), "files to", cfg.Dir)
	return 0
}

func cmdRender(args []string) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	size := fs.Int("size", iconset.MasterSize, "pixel `size` to render")
	style := fs.String("style", "walnut", "logo style: "+strings.Join(icon.StyleNames(), ", "))
	out := fs.String("o", "icon.png", "output `file`")
	err := fs.Parse(args)
	if err != nil {
		return 2
	}
	sty, err := icon.StyleByName(*style)
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}
	img, err := icon.Render(sty, *size)
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}
	fp := fsx.ExpandHome(*out)
	err = imagex.Save(img, fp)
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}
	logx.PrintlnInfo(logx.SuccessColor("wrote"), fp)
	return 0
}

func cmdIco(args []string) int {
	return assembleOne(args, iconset.Windows)
}

func cmdIcns(args []string) int {
	return assembleOne(args, iconset.MacOS)
}

// assembleOne assembles a single platform container from the resolved
// configuration.
func assembleOne(args []string, platform iconset.Platform) int {
	fs := flag.NewFlagSet(string(platform), flag.ContinueOnError)
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
	fp, err := iconset.Assemble(cfg, platform)
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}
	logx.PrintlnInfo(logx.SuccessColor("wrote"), fp)
	return 0
}

func cmdWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
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

	var paths []string
	file, _ := cf.configFile()
	if ok, _ := fsx.FileExists(file); ok {
		paths = append(paths, file)
	}
	if cfg.Source != "" {
		paths = append(paths, cfg.Source)
	}
	if len(paths) == 0 {
		logx.PrintlnError("icongen: nothing to watch; create " + defaultConfigFile + " or set -source")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	export(cfg)
	logx.PrintlnInfo("watching", strings.Join(paths, ", "), "(ctrl+c to stop)")
	err = iconset.Watch(ctx, paths, func() {
		// re-resolve so config file edits take effect
		cfg, err := cf.resolve(fs)
		if err != nil {
			logx.PrintlnError("icongen:", err.Error())
			return
		}
		export(cfg)
	})
	if err != nil {
		logx.PrintlnError("icongen:", err.Error())
		return 1
	}
	return 0
}
