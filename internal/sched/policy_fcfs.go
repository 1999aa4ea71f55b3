//go:build fcfs

// Package sched, fcfs build: first-come first-served. Non-preemptive: once
// dispatched, a process runs until it blocks or exits on its own; the tick
// handler never requests a yield.
package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

func policyName() string { return "FCFS" }

// pick selects the RUNNABLE process with the smallest Ctime (earliest
// creation, i.e. arrival order), breaking ties by pid — the process that
// has been waiting longest since creation.
func pick(t *Table_t) *common.Proc_t {
	var best *common.Proc_t
	for _, p := range t.procs {
		if p.State != common.RUNNABLE {
			continue
		}
		if best == nil || p.Ctime < best.Ctime || (p.Ctime == best.Ctime && p.Pid < best.Pid) {
			best = p
		}
	}
	return best
}

// onTick never preempts: FCFS is non-preemptive, so the tick-driven yield
// check RR/PBS/MLFQ all perform is simply suppressed here.
func onTick(t *Table_t, running *common.Proc_t) {}

// onDispatch is a no-op under FCFS: n_run is an MLFQ-only counter.
func onDispatch(t *Table_t, p *common.Proc_t) {}

func onSetPriority(t *Table_t, p *common.Proc_t, old, new int) {}

func onBecameRunnable(t *Table_t, p *common.Proc_t) {}

func onRemoveFromQueues(t *Table_t, p *common.Proc_t) {}

func onReturnedRunnable(t *Table_t, p *common.Proc_t) {}

func mlfqAgingSweep(t *Table_t) {}
