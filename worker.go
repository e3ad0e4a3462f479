package mdu

import "github.com/sirupsen/logrus"

// runWorker is one long-running consumer of q:
//
//	IDLE     → while tasks empty ∧ ¬shutdown: wait on cond
//	         → if shutdown ∧ tasks empty: exit
//	         → dequeue one task; running++          (same critical section)
//	EXECUTING→ release mutex, run the task
//	         → acquire mutex; credit blockSum, running--  (same critical section)
//	         → release mutex; after a traversal task, invoke the shutdown
//	           coordinator with a snapshot; after a sentinel, wake all waiters
//	         → back to IDLE
//
// The two same-critical-section pairings matter: without them an observer
// could see "tasks empty and running == 0" transiently between dequeue and
// the running++ that should have prevented it, firing a spurious shutdown,
// or could miss a task's contribution to blockSum.
func runWorker(q *taskQueue, env *walkEnv, id int, logger *logrus.Logger) {
	for {
		q.mu.Lock()

		for q.isEmptyLocked() && !q.shutdown {
			q.cond.Wait()
		}

		if q.shutdown && q.isEmptyLocked() {
			q.mu.Unlock()

			return
		}

		t, _ := q.dequeueLocked()
		q.running++
		q.mu.Unlock()

		logger.WithFields(logrus.Fields{"worker": id, "path": t.path}).Debug("executing task")

		contributes, blocks := executeTask(env, q, t)

		q.mu.Lock()
		if contributes {
			q.blockSum += blocks
		}
		q.running--
		snap := quiescenceSnapshot{
			tasksEmpty: q.isEmptyLocked(),
			running:    q.running,
		}
		q.mu.Unlock()

		if contributes {
			maybeShutdown(q, snap)
		} else {
			logger.WithField("worker", id).Debug("worker observed shutdown sentinel")
			// Wake every waiting worker so it can observe shutdown.
			q.cond.Broadcast()
		}
	}
}

// executeTask runs one dequeued task and reports whether it should
// contribute to blockSum. Shutdown tasks return contributes=false,
// mirroring the source's sentinel blkcnt_t of -1 with a type-safe pair
// instead of a magic value.
func executeTask(env *walkEnv, q *taskQueue, t task) (contributes bool, blocks int64) {
	switch t.kind {
	case taskShutdown:
		q.mu.Lock()
		q.shutdown = true
		q.mu.Unlock()

		return false, 0
	default:
		return true, walkPath(env, t.path)
	}
}
