// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	old := WatchDebounce
	WatchDebounce = 20 * time.Millisecond
	t.Cleanup(func() { WatchDebounce = old })

	dir := t.TempDir()
	fp := filepath.Join(dir, "icongen.toml")
	require.NoError(t, os.WriteFile(fp, []byte("dir = 'icons'\n"), 0o666))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{fp}, func() { runs <- struct{}{} })
	}()

	// give the watcher a moment to arm
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(fp, []byte("dir = 'out'\n"), 0o666))

	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not fire after a write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatchMissingPath(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, func() {})
	assert.Error(t, err)
}
