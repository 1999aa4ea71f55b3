package sched

import (
	"time"

	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/logging"
)

// The policy_*.go files (build-tag gated, exactly one compiled) supply this
// fixed set of package-level hooks, one per dispatch discipline. Keeping
// the signatures identical across rr/fcfs/pbs/mlfq lets dispatch.go,
// tick.go, lifecycle.go, and priority.go stay policy-agnostic.
//
//	pick(t)                     -> next RUNNABLE PCB, or nil (caller holds t.mu)
//	onDispatch(t, p)            -> p was just picked and marked RUNNING
//	onTick(t, running)          -> per-tick preemption check for the running PCB
//	onSetPriority(t, p, old, new) -> immediate preemption check after a priority change
//	onBecameRunnable(t, p)      -> p transitioned to RUNNABLE outside a tick (fork/wakeup)
//	onRemoveFromQueues(t, p)    -> p is leaving consideration (sleep/exit)
//	onReturnedRunnable(t, p)    -> p yielded/was preempted back to RUNNABLE
//	policyName()                -> the discipline's display name (no caller in this module)

// Run is one CPU's dispatch loop, the Go rendering of xv6's own
// non-returning scheduler(): repeatedly picks a RUNNABLE process under the
// policy's pick(), dispatches it, and accounts for however it came back
// (exited, slept, or yielded/was preempted back to RUNNABLE). stop, closed,
// ends the loop after the current dispatch returns.
func (t *Table_t) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		t.mu.Lock()
		p := pick(t)
		if p == nil {
			t.mu.Unlock()
			// No RUNNABLE process: the real scheduler() just spins with
			// interrupts enabled waiting for the next tick/wakeup. A brief
			// sleep avoids pegging a host CPU core doing the same.
			time.Sleep(time.Millisecond)
			continue
		}
		p.State = common.RUNNING
		onDispatch(t, p)
		t.mu.Unlock()

		p.Dispatch()

		t.mu.Lock()
		if p.State == common.RUNNABLE {
			onReturnedRunnable(t, p)
		}
		t.mu.Unlock()
	}
}

// assertSuspend is this module's Go equivalent of sched()'s own
// precondition asserts before every context switch. ncli/intena have no
// counterpart once "disabling interrupts" stops meaning anything in a
// hosted goroutine, but "never hand the CPU back to the dispatch loop while
// still marked RUNNING" remains a real invariant here too, and its
// violation is just as fatal: two dispatch loops could end up running the
// same PCB's body concurrently.
func assertSuspend(p *common.Proc_t) {
	if p.State == common.RUNNING {
		logging.Panicf("sched: %s (pid %d) suspended while still RUNNING", p.Name, p.Pid)
	}
}

// Yield is the cooperative equivalent of the kernel yielding the CPU back
// to the scheduler at the end of a time slice or on explicit request: the
// caller must be the running process itself. State moves RUNNING ->
// RUNNABLE and control is handed back to the dispatch loop via Sched.
func (t *Table_t) Yield(p *common.Proc_t) {
	t.mu.Lock()
	p.State = common.RUNNABLE
	assertSuspend(p)
	t.mu.Unlock()

	p.Sched()
}

// CheckIn is the cooperative stand-in for a timer-interrupt trap boundary
// that a hosted Go program cannot truly interrupt into: workload bodies
// call it at loop-iteration granularity, exactly where a real kernel would
// take a tick. If the last Tick requested preemption of this process,
// CheckIn clears the request and yields.
func (t *Table_t) CheckIn(p *common.Proc_t) {
	t.mu.Lock()
	req := p.PreemptReq
	p.PreemptReq = false
	t.mu.Unlock()

	if req {
		t.Yield(p)
	}
}
