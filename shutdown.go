package mdu

// quiescenceSnapshot is the (tasks empty, running) pair a worker takes
// atomically with its post-task running--, then hands to maybeShutdown
// outside the queue mutex.
type quiescenceSnapshot struct {
	tasksEmpty bool
	running    int
}

// quiescent reports whether the snapshot indicates the subtree is
// complete: the queue is empty and no worker is currently executing.
func (s quiescenceSnapshot) quiescent() bool {
	return s.tasksEmpty && s.running == 0
}

// maybeShutdown fires the termination protocol once the subtree is
// complete: if snap shows the queue empty and no worker running, enqueue
// exactly q.workers shutdown sentinels. The first sentinel executed sets
// shutdown; every worker then exits once it observes (shutdown and tasks
// empty). A worker may execute more than one sentinel.
//
// This can only fire once per root: the predicate "tasks empty and
// running == 0" transitions false to true exactly once, because the
// snapshot and the running-- that produced it are taken in the same
// worker.go critical section. Only the worker whose decrement brings
// running to exactly 0, with the queue already empty, can observe it, and
// the sentinel enqueue that follows immediately makes tasks non-empty
// again for the rest of the shutdown wave.
func maybeShutdown(q *taskQueue, snap quiescenceSnapshot) {
	if !snap.quiescent() {
		return
	}

	for i := 0; i < q.workers; i++ {
		q.enqueue(task{kind: taskShutdown})
	}
}
