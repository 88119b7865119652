// Package parallel provides the fork-join primitive used to run convolution
// workers.
//
// The model is deliberately minimal: every task is launched in its own
// goroutine at once and the caller blocks on a single join barrier. There is
// no pool reuse, no work stealing, and no mid-run cancellation; tasks are
// pure CPU-bound units with statically assigned work.
package parallel

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Join runs every task in its own goroutine and blocks until all of them
// have returned. It reports the first error observed; later errors are
// discarded. A panicking task is recovered and reported as an error rather
// than tearing down the process.
//
// Join returning is a happens-before barrier: all writes made by the tasks
// are visible to the caller afterwards.
func Join(tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}

	var g errgroup.Group
	for _, task := range tasks {
		task := task
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("parallel: task panicked: %v", r)
				}
			}()
			return task()
		})
	}
	return g.Wait()
}
