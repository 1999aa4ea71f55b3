//go:build mlfq

// Package sched, mlfq build: multi-level feedback queue. Five priority
// queues (queue 0 highest); a process exhausting its queue's tick
// allotment is demoted, a process that ages past the configured threshold
// without running is promoted. Grounded directly on
// original_source/proc.c's scheduler() MLFQ branch and shift_proc_q.
package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

func policyName() string { return "MLFQ" }

// pick scans queues highest-to-lowest and returns the head of the first
// non-empty one, removing it from the queue bank. A process only sits in a
// queue while it is not RUNNING; onReturnedRunnable or onRemoveFromQueues
// puts it back once it stops running, so a second CPU's pick can never
// select the same PCB twice.
func pick(t *Table_t) *common.Proc_t {
	for i := 0; i < common.NumQueues; i++ {
		if len(t.queues.q[i]) > 0 {
			p := t.queues.q[i][0]
			t.shiftProcQ(p, i, -1, t.ticks)
			return p
		}
	}
	return nil
}

// onDispatch counts dispatches: matching the original's own
// scheduler()'s #ifdef MLFQ branch, n_run is an MLFQ-only statistic, never
// touched by the other three disciplines.
func onDispatch(t *Table_t, p *common.Proc_t) {
	p.NRun++
}

// onTick is the slice-accounting step: advance the running process's
// per-queue tick counters, and once its current queue's configured
// allotment (t.cfg.QTicksMax[CurrQueue]) is exhausted, flag it for
// demotion and request a yield. Processes that haven't exhausted their
// slice are left running (no preemption requested).
func onTick(t *Table_t, running *common.Proc_t) {
	running.CurrTicks++
	running.Ticks[running.CurrQueue]++

	if running.CurrTicks >= t.cfg.QTicksMax[running.CurrQueue] {
		running.ChangeQ = true
		running.PreemptReq = true
	}
}

func onSetPriority(t *Table_t, p *common.Proc_t, old, new int) {}

// onBecameRunnable inserts a process into MLFQ queue 0 the first time it
// becomes RUNNABLE after fork, and back into its last CurrQueue after a
// sleep/wakeup or kill cycle: a process waking from sleep re-enters at the
// queue it left, while a freshly forked process always starts at queue 0
// because CurrQueue's zero value is 0.
func onBecameRunnable(t *Table_t, p *common.Proc_t) {
	t.shiftProcQ(p, -1, p.CurrQueue, t.ticks)
}

// onRemoveFromQueues removes a process from whichever queue currently
// holds it (sleep or exit): it must not be considered by pick again until
// onBecameRunnable reinserts it.
func onRemoveFromQueues(t *Table_t, p *common.Proc_t) {
	t.shiftProcQ(p, p.CurrQueue, -1, t.ticks)
}

// onReturnedRunnable runs once a RUNNING process comes back RUNNABLE
// (yielded voluntarily or was preempted by onTick). pick already removed p
// from the queue bank when it was dispatched, so this only needs to
// compute the reinsertion queue: if its slice was exhausted (ChangeQ),
// demote it one level (floor at the lowest) and reset its slice counter;
// otherwise it reinserts at the tail of the same queue it was running from.
func onReturnedRunnable(t *Table_t, p *common.Proc_t) {
	to := p.CurrQueue
	if p.ChangeQ {
		p.ChangeQ = false
		p.CurrTicks = 0
		if to < common.NumQueues-1 {
			to++
		}
	}
	t.shiftProcQ(p, -1, to, t.ticks)
}

// mlfqAgingSweep promotes any RUNNABLE process that has waited in a
// non-top queue longer than the configured aging threshold (t.cfg.Age).
// Each queue is snapshotted before iterating (queueBank_t.snapshot) since
// promoting a process mutates the very queue the sweep is walking.
func mlfqAgingSweep(t *Table_t) {
	for i := 1; i < common.NumQueues; i++ {
		for _, p := range t.queues.snapshot(i) {
			if p.State != common.RUNNABLE {
				continue
			}
			if t.ticks-p.Enter > int64(t.cfg.Age) {
				t.shiftProcQ(p, i, i-1, t.ticks)
			}
		}
	}
}
