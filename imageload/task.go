// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"context"
)

// Task is a pending image load. It completes exactly once.
type Task struct {
	path   string
	done   chan struct{}
	cancel context.CancelFunc

	// written before done is closed
	img *Image
	err error
}

func newTask(path string, cancel context.CancelFunc) *Task {
	return &Task{
		path:   path,
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// Path returns the path the task is loading.
func (t *Task) Path() string { return t.path }

// Done returns a channel that is closed when the load completes.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result blocks until the load completes and returns its outcome.
// Exactly one of the return values is non-nil.
func (t *Task) Result() (*Image, error) {
	<-t.done
	return t.img, t.err
}

// Wait is like Result but gives up when ctx is done. Giving up does not
// cancel the load; use Cancel for that.
func (t *Task) Wait(ctx context.Context) (*Image, error) {
	select {
	case <-t.done:
		return t.img, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel aborts the load. The task still completes, with a
// context.Canceled error unless it had already finished.
func (t *Task) Cancel() { t.cancel() }

func (t *Task) complete(img *Image, err error) {
	t.img, t.err = img, err
	close(t.done)
}
