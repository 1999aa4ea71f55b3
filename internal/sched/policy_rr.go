//go:build rr

// Package sched, rr build: plain round-robin. Every process gets an equal
// turn; the tick handler yields the running process unconditionally, so no
// process can hold the CPU past its current tick.
package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

func policyName() string { return "RR" }

// pick scans t.procs starting just after the last picked index, returning
// the first RUNNABLE found — a fair rotation instead of always favoring
// low-numbered slots.
func pick(t *Table_t) *common.Proc_t {
	n := len(t.procs)
	for i := 0; i < n; i++ {
		idx := (t.scanCursor + i) % n
		p := t.procs[idx]
		if p.State == common.RUNNABLE {
			t.scanCursor = idx + 1
			return p
		}
	}
	return nil
}

// onTick yields the running process every tick: RR grants no process more
// than one tick before giving every other RUNNABLE process a turn.
func onTick(t *Table_t, running *common.Proc_t) {
	running.PreemptReq = true
}

// onDispatch is a no-op under RR: n_run is an MLFQ-only counter in the
// original kernel (set inside scheduler()'s #ifdef MLFQ branch), so it
// stays 0 for the life of a process under this discipline.
func onDispatch(t *Table_t, p *common.Proc_t) {}

func onSetPriority(t *Table_t, p *common.Proc_t, old, new int) {}

func onBecameRunnable(t *Table_t, p *common.Proc_t) {}

func onRemoveFromQueues(t *Table_t, p *common.Proc_t) {}

func onReturnedRunnable(t *Table_t, p *common.Proc_t) {}

func mlfqAgingSweep(t *Table_t) {}
