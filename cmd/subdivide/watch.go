// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/subdivide/base/errors"
	"cogentcore.org/subdivide/config"
	"cogentcore.org/subdivide/logx"
	"github.com/fsnotify/fsnotify"
)

// debounce is how long the input must be quiet after a change before
// it is read again. Editors often write a file in several steps.
const debounce = 200 * time.Millisecond

// watch runs the job, and then again every time its input changes,
// until the context is done. Failed runs are reported and watching goes on.
func (r *runner) watch(ctx context.Context, job config.Job) error {
	fw, err := newFileWatcher(job.Input)
	if err != nil {
		return err
	}
	defer fw.Close()
	r.rerun(job)
	logx.PrintlnInfo(logx.CmdColor("watching " + job.Input))
	fw.run(ctx, debounce, func() {
		logx.PrintlnDebug("change in " + job.Input)
		r.rerun(job)
	})
	return nil
}

// rerun runs the job and reports a failure without ending the watch.
func (r *runner) rerun(job config.Job) {
	if err := r.run(job); err != nil {
		logx.PrintlnWarn(err.Error())
	}
}

// fileWatcher watches a single file. It watches the directory of the
// file, since editors often replace a file instead of writing to it,
// which would end a watch on the file itself.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	file    string
}

func newFileWatcher(file string) (*fileWatcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &fileWatcher{watcher: w, file: abs}, nil
}

func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}

// run calls changed after each burst of writes to the file that is
// followed by at least wait without further writes, until the context
// is done or the watcher is closed.
func (fw *fileWatcher) run(ctx context.Context, wait time.Duration, changed func()) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.file || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("input changed", "file", ev.Name, "op", ev.Op)
			if timer == nil {
				timer = time.NewTimer(wait)
			} else {
				timer.Reset(wait)
			}
			fire = timer.C
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(fmt.Errorf("watching %s: %w", fw.file, err))
		case <-fire:
			fire = nil
			changed()
		}
	}
}
