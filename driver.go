package mdu

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Run drives the whole command: for each root, choose sequential or
// parallel mode, print the `<blocks>\t<path>\n` result line, and reset
// per-root state. It returns the process exit code (0 if every directory
// encountered across every root was readable, 1 otherwise). Computing the
// exit code is kept separate from calling os.Exit so Run is directly
// testable; only cmd/mdu/main.go calls os.Exit, keeping cmd/*/main.go a
// thin wrapper around a testable library entry point.
func Run(cfg Config) int {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := cfg.Logger
	if logger == nil {
		logger = newLogger(cfg.Verbose, stderr)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	q := newTaskQueue(workers)

	for _, root := range cfg.Roots {
		var total int64

		if workers > 1 {
			total = runRootParallel(q, root, workers, stderr, logger)
		} else {
			total = runRootSequential(q, root, stderr)
		}

		fmt.Fprintf(stdout, "%d\t%s\n", total, root)

		q.reset()
	}

	q.mu.Lock()
	permissionOK := q.permissionOK
	q.mu.Unlock()

	if permissionOK {
		return 0
	}

	return 1
}

// runRootSequential computes root's block sum recursively on the calling
// goroutine, matching the source's get_block_size call from
// start_options_and_run. Permission accounting still flows through q so
// Run's single exit-code check at the end covers both modes.
func runRootSequential(q *taskQueue, root string, stderr io.Writer) int64 {
	env := &walkEnv{
		stderr:                stderr,
		markPermissionFailure: q.markPermissionFailure,
	}
	env.onSubdir = func(childPath string) int64 {
		return walkPath(env, childPath)
	}

	return walkPath(env, root)
}

// runRootParallel spawns q.workers workers, seeds the queue with one task
// for root, joins all workers, and returns the accumulated block sum.
func runRootParallel(q *taskQueue, root string, workers int, stderr io.Writer, logger *logrus.Logger) int64 {
	env := &walkEnv{
		stderr:                stderr,
		markPermissionFailure: q.markPermissionFailure,
	}
	env.onSubdir = func(childPath string) int64 {
		q.enqueue(task{kind: taskWalk, path: childPath})

		return 0
	}

	var wg sync.WaitGroup

	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()

			runWorker(q, env, id, logger)
		}(i)
	}

	q.enqueue(task{kind: taskWalk, path: root})

	wg.Wait()

	q.mu.Lock()
	total := q.blockSum
	q.mu.Unlock()

	return total
}
