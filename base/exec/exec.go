// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

// Package exec provides an easy way to execute commands,
// improving the ease-of-use and error handling of the
// standard library os/exec package.
package exec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/walnutbook/icongen/base/logx"
)

// Config contains the configuration information that
// controls the behavior of command execution.
type Config struct {

	// Buffer is whether to buffer the output of Stdout and Stderr,
	// which is necessary for including command output in errors.
	// It should be turned off when streaming the output of a
	// long-running command to the user.
	Buffer bool

	// PrintOnly is whether to only print commands that would be run,
	// without actually running them.
	PrintOnly bool

	// Commands is where the echo of each command is written.
	// If nil, commands are not echoed.
	Commands io.Writer

	// Errors is where command errors are written.
	// If nil, errors are only returned.
	Errors io.Writer

	// Stdout receives the standard output of commands.
	// If nil, standard output is discarded.
	Stdout io.Writer

	// Stderr receives the standard error of commands.
	// If nil, standard error is discarded.
	Stderr io.Writer

	// Stdin is the standard input given to commands.
	Stdin io.Reader

	// Env contains environment variables set for commands,
	// over the parent process environment.
	Env map[string]string

	// Dir is the directory commands run in.
	// If empty, commands run in the current directory.
	Dir string
}

// Major returns the default [Config] for major commands
// whose output should be visible to the user at the
// default verbosity level.
func Major() *Config {
	c := &Config{Buffer: true, Stdin: os.Stdin}
	if logx.UserLevel <= slog.LevelInfo {
		c.Commands = logx.Stdout
		c.Errors = logx.Stderr
		c.Stdout = logx.Stdout
		c.Stderr = logx.Stderr
	}
	return c
}

// Minor returns the default [Config] for minor commands,
// whose output is only visible in debug mode.
func Minor() *Config {
	c := &Config{Buffer: true, Stdin: os.Stdin}
	if logx.UserLevel <= slog.LevelDebug {
		c.Commands = logx.Stdout
		c.Errors = logx.Stderr
		c.Stdout = logx.Stdout
		c.Stderr = logx.Stderr
	}
	return c
}

// Silent returns a [Config] that runs commands without
// any output to the user.
func Silent() *Config {
	return &Config{Buffer: true, Stdin: os.Stdin}
}

// Verbose returns a [Config] that always echoes commands and
// streams their output, regardless of the user verbosity level.
func Verbose() *Config {
	return &Config{
		Buffer:   true,
		Commands: logx.Stdout,
		Errors:   logx.Stderr,
		Stdout:   logx.Stdout,
		Stderr:   logx.Stderr,
		Stdin:    os.Stdin,
	}
}

// SetBuffer sets [Config.Buffer] and returns the config for chaining.
func (c *Config) SetBuffer(buffer bool) *Config {
	c.Buffer = buffer
	return c
}

// SetPrintOnly sets [Config.PrintOnly] and returns the config for chaining.
func (c *Config) SetPrintOnly(printOnly bool) *Config {
	c.PrintOnly = printOnly
	return c
}

// SetDir sets [Config.Dir] and returns the config for chaining.
func (c *Config) SetDir(dir string) *Config {
	c.Dir = dir
	return c
}

// SetEnv sets the given environment variable and
// returns the config for chaining.
func (c *Config) SetEnv(key, value string) *Config {
	if c.Env == nil {
		c.Env = make(map[string]string)
	}
	c.Env[key] = value
	return c
}

// SetStdout sets [Config.Stdout] and returns the config for chaining.
func (c *Config) SetStdout(w io.Writer) *Config {
	c.Stdout = w
	return c
}

// Exec executes the given command with the given arguments,
// handling printing and buffering per the config. It reports
// whether the command ran (as opposed to failing to start),
// along with any error.
func (c *Config) Exec(cmd string, args ...string) (ran bool, err error) {
	cstr := cmdString(c.Dir, cmd, args)
	if c.Commands != nil {
		fmt.Fprintln(c.Commands, logx.CmdColor(cstr))
	}
	if c.PrintOnly {
		return false, nil
	}

	cm := exec.Command(cmd, args...)
	cm.Env = os.Environ()
	for k, v := range c.Env {
		cm.Env = append(cm.Env, k+"="+v)
	}
	cm.Dir = c.Dir
	cm.Stdin = c.Stdin

	var obuf, ebuf *bytes.Buffer
	if c.Buffer {
		obuf = &bytes.Buffer{}
		ebuf = &bytes.Buffer{}
		cm.Stdout = obuf
		cm.Stderr = ebuf
	} else {
		cm.Stdout = c.Stdout
		cm.Stderr = c.Stderr
	}

	err = cm.Run()
	if c.Buffer {
		if c.Stdout != nil {
			c.Stdout.Write(obuf.Bytes())
		}
		if c.Stderr != nil {
			c.Stderr.Write(ebuf.Bytes())
		}
	}
	if err != nil {
		estr := ""
		if c.Buffer && ebuf.Len() > 0 {
			estr = ": " + strings.TrimSuffix(ebuf.String(), "\n")
		}
		err = fmt.Errorf("error running %q: %w%s", cstr, err, estr)
		if c.Errors != nil {
			fmt.Fprintln(c.Errors, logx.ErrorColor(err.Error()))
		}
		return cmdRan(err), err
	}
	return true, nil
}

// cmdRan reports whether the command ran, examining the error
// from [exec.Cmd.Run].
func cmdRan(err error) bool {
	ee := &exec.ExitError{}
	if errors.As(err, &ee) {
		return ee.Exited()
	}
	return false
}

// cmdString returns the user-facing representation of the command.
func cmdString(dir, cmd string, args []string) string {
	cstr := strings.Join(append([]string{cmd}, args...), " ")
	if dir != "" {
		cstr = "cd " + dir + "; " + cstr
	}
	return cstr
}

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable.
// It is equivalent to [exec.LookPath].
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
