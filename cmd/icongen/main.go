// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command icongen renders the WalnutBook logo and exports the icon
// set the packaging tool consumes, including the platform icon
// containers.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/walnutbook/icongen/base/logx"
)

// version is set by the linker at release build time.
var version = "dev"

// defaultConfigFile is read when present and no -config flag is given.
const defaultConfigFile = "icongen.toml"

func main() {
	logx.InitColor()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	fs.Usage = usage
	verbose := fs.Bool("v", false, "print debug messages")
	quiet := fs.Bool("q", false, "print only warnings and errors")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	switch {
	case *verbose:
		logx.UserLevel = slog.LevelDebug
	case *quiet:
		logx.UserLevel = slog.LevelWarn
	}

	cmd := fs.Arg(0)
	var rest []string
	if fs.NArg() > 1 {
		rest = fs.Args()[1:]
	}
	switch cmd {
	case "", "export":
		return cmdExport(rest)
	case "render":
		return cmdRender(rest)
	case "ico":
		return cmdIco(rest)
	case "icns":
		return cmdIcns(rest)
	case "watch":
		return cmdWatch(rest)
	case "doctor":
		return cmdDoctor(rest)
	case "version":
		logx.PrintlnInfo("icongen", version)
		return 0
	case "help":
		usage()
		return 0
	}
	logx.PrintlnError("icongen: unknown command", strconv.Quote(cmd))
	usage()
	return 2
}

func usage() {
	logx.PrintlnInfo(logx.TitleColor("icongen"), "renders the WalnutBook logo and exports the icon set")
	logx.PrintlnInfo(`
usage: icongen [-v|-q] <command> [flags]

commands:
  export    render every icon size and assemble the containers (default)
  render    render one size to one file
  ico       assemble the Windows icon.ico container
  icns      assemble the macOS icon.icns container
  watch     re-export whenever the config or source image changes
  doctor    check what this system can generate
  version   print the version

run icongen <command> -h for the flags of each command`)
}
