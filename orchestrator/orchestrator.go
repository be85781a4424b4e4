// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package orchestrator races the Bluetooth loop, Wi-Fi loop, and
// channel hopper and aborts all of them on the first fatal error, per
// spec.md §5.
package orchestrator

import (
	"context"
	"sync"
)

// Task is one of the long-running loops the orchestrator races.
type Task func(ctx context.Context) error

// Run starts every task in its own goroutine under a shared
// cancellable context. The first task to return a non-nil error
// cancels the context (and therefore every other task); Run returns
// that first error once all tasks have exited. A nil return from a
// task (clean shutdown) does not trigger cancellation by itself.
func Run(ctx context.Context, tasks ...Task) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for _, task := range tasks {
		task := task
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(ctx); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}()
	}

	wg.Wait()
	return firstErr
}
