package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

// sleepLocked is Sleep for callers that already hold t.mu (lifecycle.go's
// Wait/Waitx loop). It implements the lk == ptable.lock fast path of xv6's
// own sleep/wakeup contract: the original's "release lk, acquire
// ptable.lock" dance only matters when a caller holds some other lock
// first; this module has no modeled per-resource lock distinct from the
// table lock, so that path never arises (recorded as an Open Question
// resolution in DESIGN.md).
//
// Go's sync.Mutex permits unlocking from a goroutine other than the one
// that locked it, which is exactly what lets this function unlock mu here
// and have the dispatch loop's goroutine re-lock it on p's behalf once p is
// next dispatched — the same cross-goroutine handoff xv6's own lock
// discipline describes, just without the C original's single-threaded
// acquire/release being literally the same call stack.
func (t *Table_t) sleepLocked(p *common.Proc_t, chanToken any) {
	p.WaitChan = chanToken
	p.State = common.SLEEPING
	onRemoveFromQueues(t, p)
	assertSuspend(p)

	t.mu.Unlock()
	p.Sched()
	t.mu.Lock()

	p.WaitChan = nil
}

// Sleep blocks the calling process (which must be p, running) until a
// Wakeup call names chanToken.
func (t *Table_t) Sleep(p *common.Proc_t, chanToken any) {
	t.mu.Lock()
	t.sleepLocked(p, chanToken)
	t.mu.Unlock()
}

// wakeupLocked moves every SLEEPING process waiting on chanToken to
// RUNNABLE. Caller must hold t.mu. Matches the original's wakeup1: a no-op
// chanToken (nil, or no sleeper matches) wakes nobody, never an error —
// waking a channel with no sleepers is a no-op.
func (t *Table_t) wakeupLocked(chanToken any) {
	if chanToken == nil {
		return
	}
	for _, p := range t.procs {
		if p.State == common.SLEEPING && p.WaitChan == chanToken {
			p.State = common.RUNNABLE
			onBecameRunnable(t, p)
		}
	}
}

// Wakeup is wakeupLocked for external callers (cmd/* shims, tests).
func (t *Table_t) Wakeup(chanToken any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wakeupLocked(chanToken)
}

// Kill marks pid killed and, if it is SLEEPING, wakes it so it observes the
// kill promptly instead of sleeping forever. Kill never forces a RUNNING
// process to stop immediately — it must notice Killed itself, exactly as
// the original relies on syscalls/traps checking p->killed. Returns ESRCH
// if pid does not name a live process.
func (t *Table_t) Kill(pid common.Pid_t) common.Err_t {
	if !t.allowSyscall("kill") {
		return common.ESRCH
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.find(pid)
	if p == nil || p.State == common.UNUSED {
		return common.ESRCH
	}

	p.Killed = true
	if p.State == common.SLEEPING {
		p.State = common.RUNNABLE
		onBecameRunnable(t, p)
	}
	return common.EOK
}
