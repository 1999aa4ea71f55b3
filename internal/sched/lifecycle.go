package sched

import (
	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/logging"
)

// alloc scans for an UNUSED slot, transitions it to EMBRYO, assigns a fresh
// pid, and initializes timing/MLFQ fields — the Go rendering of xv6's own
// allocproc. Returns nil if the table is full, a plain error return rather
// than a panic, since a full process table is an ordinary runtime
// condition a caller must be able to handle.
//
// Unlike the C original, there is no kernel-stack allocation to fail
// separately: the PCB's "stack" is its goroutine, which Fork starts after
// alloc returns and which parks at AwaitDispatch until first dispatched, so
// alloc cannot fail after finding a slot.
func (t *Table_t) alloc(name string) *common.Proc_t {
	t.mu.Lock()
	defer t.mu.Unlock()

	var p *common.Proc_t
	for _, cand := range t.procs {
		if cand.State == common.UNUSED {
			p = cand
			break
		}
	}
	if p == nil {
		return nil
	}

	pid := t.nextPid
	t.nextPid++

	*p = common.Proc_t{
		Pid:      pid,
		State:    common.EMBRYO,
		Name:     name,
		Ctime:    t.ticks,
		Priority: t.cfg.DefaultPriority,
	}
	p.NewCoro()
	return p
}

// Userinit creates the root process (init, pid 1). It must be called
// exactly once, before any Fork. init never exits, and in this module is
// never dispatched either: its only role here is as the root of the
// reparenting tree orphaned children attach to (Exit's loop over
// t.procs). Real xv6's init also spins in a wait() loop reaping orphans; a
// caller that wants that can poll ReapChild(initProc) instead of
// dispatching init as a PCB, since init has no workload body to run.
// p.State is left EMBRYO, so no policy's pick ever selects it.
func (t *Table_t) Userinit() *common.Proc_t {
	p := t.alloc("init")
	if p == nil {
		logging.Panicf("userinit: process table full")
	}
	t.initProc = p
	return p
}

// Fork allocates a child PCB and starts its goroutine, inheriting parent as
// a weak back-edge: a plain pointer into the fixed-size table, rather than
// an owning reference, the same non-owning role a parent pid field plays
// in the C original. body plays the role of the child's user-mode code; it
// receives the child's own *common.Proc_t so it can call Sleep, Exit,
// Yield, etc. on itself. Returns -1 (common.ENOMEM) if the table is full,
// never a partial child.
func (t *Table_t) Fork(parent *common.Proc_t, name string, body func(self *common.Proc_t)) (common.Pid_t, common.Err_t) {
	child := t.alloc(name)
	if child == nil {
		return 0, common.ENOMEM
	}

	t.mu.Lock()
	child.Parent = parent
	t.mu.Unlock()

	go t.runProc(child, body)

	t.mu.Lock()
	child.State = common.RUNNABLE
	onBecameRunnable(t, child)
	t.mu.Unlock()

	return child.Pid, common.EOK
}

// runProc is the goroutine body for every process: wait to be first
// dispatched (forkret's role), run the workload, then retire via Exit. It
// never returns control to body after Exit — the Go rendering of xv6's own
// exit() never returning to its caller.
func (t *Table_t) runProc(p *common.Proc_t, body func(self *common.Proc_t)) {
	p.AwaitDispatch()
	body(p)
	t.Exit(p)
}

// Exit transitions the caller to ZOMBIE. Must never be called on the init
// process — real xv6 panics if init ever exits, since nothing would be
// left to reap orphans — callers never arrange for init's body to return,
// so this is asserted defensively.
func (t *Table_t) Exit(p *common.Proc_t) {
	if p == t.initProc {
		logging.Panicf("exit: init exiting")
	}

	t.mu.Lock()

	// Parent might be sleeping in Wait/Waitx.
	t.wakeupLocked(p.Parent)

	// Pass abandoned children to init.
	for _, c := range t.procs {
		if c.Parent == p {
			c.Parent = t.initProc
			if c.State == common.ZOMBIE {
				t.wakeupLocked(t.initProc)
			}
		}
	}

	onRemoveFromQueues(t, p)
	p.State = common.ZOMBIE
	p.Etime = t.ticks
	assertSuspend(p)

	t.mu.Unlock()

	p.Retire()
}

// Wait blocks until a child exits, reaps it, and returns its pid. Returns
// -1 (common.ECHILD) if the caller has no children or has been killed.
func (t *Table_t) Wait(self *common.Proc_t) (common.Pid_t, common.Err_t) {
	pid, _, _, err := t.waitCommon(self, false)
	return pid, err
}

// Waitx is Wait plus rtime/wtime accounting: the reaped child's total
// running time and total waiting time, the Go rendering of xv6's own
// waitx() syscall used by the time-measuring user programs.
func (t *Table_t) Waitx(self *common.Proc_t) (pid common.Pid_t, rtime, wtime int64, err common.Err_t) {
	return t.waitCommon(self, true)
}

// ReapChild is Waitx's non-blocking counterpart, for callers that are not
// themselves a dispatched process's own goroutine (cmd/* harnesses, init's
// orphan-reaping role): it reaps at most one ZOMBIE child of parent and
// returns immediately, found=false if none is ready, instead of sleeping.
func (t *Table_t) ReapChild(parent *common.Proc_t) (pid common.Pid_t, rtime, wtime int64, found bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.procs {
		if c.Parent != parent || c.State != common.ZOMBIE {
			continue
		}
		pid = c.Pid
		rtime = c.Rtime
		c.Etime = t.ticks
		wtime = c.Etime - c.Ctime - c.Rtime
		c.Reset()
		return pid, rtime, wtime, true
	}
	return 0, 0, 0, false
}

func (t *Table_t) waitCommon(self *common.Proc_t, withTimes bool) (common.Pid_t, int64, int64, common.Err_t) {
	t.mu.Lock()
	for {
		haveKids := false
		for _, c := range t.procs {
			if c.Parent != self {
				continue
			}
			haveKids = true
			if c.State != common.ZOMBIE {
				continue
			}

			pid := c.Pid
			var rtime, wtime int64
			if withTimes {
				rtime = c.Rtime
				c.Etime = t.ticks
				wtime = c.Etime - c.Ctime - c.Rtime
			}
			c.Reset()
			t.mu.Unlock()
			return pid, rtime, wtime, common.EOK
		}

		if !haveKids || self.Killed {
			t.mu.Unlock()
			return 0, 0, 0, common.ECHILD
		}

		// Sleep on self, matching the original's sleep(curproc, &ptable.lock):
		// exit() wakes curproc->parent, i.e. the sleeper's own token.
		t.sleepLocked(self, self)
	}
}
