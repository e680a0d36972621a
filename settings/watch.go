// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/adaptive/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch watches the given settings file and sends freshly loaded
// settings, starting from the given base settings, each time it is
// written. The directory of the file is watched so that files
// replaced by editors are picked up. The returned channel is closed
// when the context is done. Settings are only ever delivered through
// the channel, so that widgets are updated on the receiving goroutine.
func Watch(ctx context.Context, base *Settings, filename string) (<-chan *Settings, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(fn)); err != nil {
		watcher.Close()
		return nil, err
	}
	ch := make(chan *Settings)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != fn || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s := base.Clone()
				if errors.Log(Open(s, fn)) != nil {
					continue
				}
				slog.Debug("settings reloaded", "file", fn)
				select {
				case ch <- s:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return ch, nil
}
