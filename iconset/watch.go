// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconset

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/walnutbook/icongen/base/errors"
	"github.com/walnutbook/icongen/base/logx"
)

// WatchDebounce is how long after the last filesystem event a watched
// run waits before firing, so bursts of events trigger one run.
var WatchDebounce = 250 * time.Millisecond

// Watch runs fn whenever one of the given paths changes, until the
// context is canceled. Bursts of events within [WatchDebounce] of
// each other trigger a single run.
func Watch(ctx context.Context, paths []string, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
	}
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
				ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				logx.PrintlnDebug("iconset: watch:", ev.String())
				timerC = time.After(WatchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-timerC:
			timerC = nil
			// editors that save atomically drop the watch; re-arm it
			for _, p := range paths {
				_ = watcher.Add(p)
			}
			fn()
		}
	}
}
