package mdu

import "sync"

// taskKind distinguishes a traversal task from a shutdown sentinel.
//
// The source dispatches via a function pointer stored in each task,
// requiring an unsafe cast chain to make a single pointer type serve two
// incompatible signatures (get_block_size_mult vs. shutdown_threads). A
// tagged variant dispatched with a switch on kind in the worker loop (see
// worker.go) gets the same two-shape dispatch without the cast.
type taskKind uint8

const (
	taskWalk taskKind = iota
	taskShutdown
)

// task is one unit of queued work: either "traverse the directory at path"
// or "shut down". path is unused for shutdown tasks.
type task struct {
	kind taskKind
	path string
}

// taskQueue is a thread-safe FIFO of tasks plus the worker pool's shared
// accounting state. A single mutex guards every mutable field below; cond
// is bound to that mutex and is signalled on every enqueue.
//
// This is the one component in the repo where the standard library
// (sync.Mutex + sync.Cond) is the correct tool rather than a gap: it is the
// direct translation of the source's pthread_mutex_t/pthread_cond_t pair,
// and the queue's correctness depends on the mutex/cond/running/shutdown
// fields being read or written only while the mutex is held.
type taskQueue struct {
	mu   sync.Mutex
	cond *sync.Cond

	tasks []task

	// workers is the fixed worker count, set once at construction.
	workers int

	// running counts workers currently executing a task, i.e. between
	// dequeue and the completion of that task's effects on blockSum.
	running int

	// blockSum accumulates block counts for the current root. Reset
	// between roots by reset().
	blockSum int64

	// permissionOK starts true and is flipped to false the first time any
	// directory fails to open for reading. It is process-lifetime, not
	// per-root: once false it stays false across every remaining root, so
	// the final exit code reflects every directory across every root.
	permissionOK bool

	// shutdown is set true once the shutdown coordinator has decided the
	// current root's subtree is complete. No further traversal tasks may
	// be enqueued once true.
	shutdown bool
}

func newTaskQueue(workers int) *taskQueue {
	q := &taskQueue{
		workers:      workers,
		permissionOK: true,
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// enqueue appends t to the back of the queue and wakes at most one waiter.
func (q *taskQueue) enqueue(t task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	q.cond.Signal()
}

// dequeueLocked removes and returns the task at the front of the queue.
// Caller must hold mu. Returns ok=false if the queue is empty.
func (q *taskQueue) dequeueLocked() (task, bool) {
	if len(q.tasks) == 0 {
		return task{}, false
	}

	t := q.tasks[0]
	q.tasks = q.tasks[1:]

	return t, true
}

// isEmptyLocked reports whether the queue has no pending tasks. Caller must
// hold mu.
func (q *taskQueue) isEmptyLocked() bool {
	return len(q.tasks) == 0
}

// reset restores the queue to its pre-root state: drains any residual
// tasks, zeroes running/blockSum, and clears shutdown, so the driver can
// reuse one queue across multiple roots. permissionOK is intentionally left
// untouched: it is a process-lifetime flag, reset only at construction.
//
// Precondition: no worker is active (all workers from the previous root
// have been joined, or this is being called before any worker is spawned).
func (q *taskQueue) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.tasks = q.tasks[:0]
	q.running = 0
	q.blockSum = 0
	q.shutdown = false
}

// markPermissionFailure flips permissionOK to false under the queue mutex.
// Called by the walker when a directory cannot be opened for reading.
func (q *taskQueue) markPermissionFailure() {
	q.mu.Lock()
	q.permissionOK = false
	q.mu.Unlock()
}
