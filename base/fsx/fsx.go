// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides filesystem helpers.
package fsx

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/walnutbook/icongen/base/errors"
)

// FileExists checks whether the given file exists, returning true if so,
// false if not, and an error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// DirExists checks whether the given directory exists, returning true if so,
// false if not, and an error if there is an error in accessing the directory.
func DirExists(dirPath string) (bool, error) {
	fileInfo, err := os.Stat(dirPath)
	if err == nil {
		return fileInfo.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths returns the full paths at which any of the given file
// names exist on the given list of directories, in directory order.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var found []string
	for _, path := range paths {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if ok {
				found = append(found, fp)
			}
		}
	}
	return found
}

// ExpandHome expands a leading ~ in the given path to the home directory
// of the current user. Paths without a ~ are returned unchanged, as is
// the original path if the home directory cannot be determined.
func ExpandHome(path string) string {
	ep, err := homedir.Expand(path)
	if err != nil {
		errors.Log(err)
		return path
	}
	return ep
}
