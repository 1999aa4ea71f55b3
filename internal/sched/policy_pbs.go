//go:build pbs

// Package sched, pbs build: priority-based scheduling. Lower Priority value
// wins; ties are broken by rotation, same as rr, so equal-priority
// processes still round-robin against each other.
package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

func policyName() string { return "PBS" }

// pick selects the RUNNABLE process with the lowest Priority value,
// breaking ties by scanning from scanCursor so equal-priority processes
// rotate rather than starve each other.
func pick(t *Table_t) *common.Proc_t {
	n := len(t.procs)
	var best *common.Proc_t
	bestIdx := -1
	for i := 0; i < n; i++ {
		idx := (t.scanCursor + i) % n
		p := t.procs[idx]
		if p.State != common.RUNNABLE {
			continue
		}
		if best == nil || p.Priority < best.Priority {
			best = p
			bestIdx = idx
		}
	}
	if best != nil {
		t.scanCursor = bestIdx + 1
	}
	return best
}

// onTick is PBS's per-tick slice-elapsed check: every tick counts as the
// running process's whole slice, so checkPreempt is called with
// samePriority=true, which also subsumes the strictly-lower-priority case a
// fresh arrival would trigger.
func onTick(t *Table_t, running *common.Proc_t) {
	if t.checkPreemptLocked(running.Priority, true) {
		running.PreemptReq = true
	}
}

// onDispatch is a no-op under PBS: n_run is an MLFQ-only counter.
func onDispatch(t *Table_t, p *common.Proc_t) {}

// onSetPriority is the immediate, same-tick check a priority change needs:
// it can make some other RUNNABLE process strictly outrank whatever is
// currently RUNNING, and that shouldn't have to wait for the next periodic
// tick to take effect. samePriority=false here deliberately excludes the
// equal-priority case, which the every-tick onTick check already covers.
func onSetPriority(t *Table_t, p *common.Proc_t, old, new int) {
	for _, running := range t.procs {
		if running.State != common.RUNNING {
			continue
		}
		if t.checkPreemptLocked(running.Priority, false) {
			running.PreemptReq = true
		}
	}
}

func onBecameRunnable(t *Table_t, p *common.Proc_t) {}

func onRemoveFromQueues(t *Table_t, p *common.Proc_t) {}

func onReturnedRunnable(t *Table_t, p *common.Proc_t) {}

func mlfqAgingSweep(t *Table_t) {}
