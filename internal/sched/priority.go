package sched

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/logging"
)

// SetPriority changes pid's PBS priority, clamped to
// [common.MinPriority, common.MaxPriority] — out-of-range values are
// clamped, not rejected. Returns the previous priority and ESRCH if pid
// does not name a live process.
//
// The caller may need to yield if the new value warrants preemption:
// onSetPriority lets the PBS build request an immediate preemption check
// (the samePriority=false case of checkPreempt) instead of waiting for the
// next regular tick, covering scenarios like a newly-raised process
// outranking whatever is currently RUNNING. Under non-PBS builds
// onSetPriority is a no-op since priority plays no role in those
// disciplines.
func (t *Table_t) SetPriority(pid common.Pid_t, priority int) (old int, err common.Err_t) {
	if priority < common.MinPriority {
		priority = common.MinPriority
	}
	if priority > common.MaxPriority {
		priority = common.MaxPriority
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.find(pid)
	if p == nil || p.State == common.UNUSED {
		return 0, common.ESRCH
	}

	old = p.Priority
	p.Priority = priority
	onSetPriority(t, p, old, priority)
	return old, common.EOK
}

// CheckPreempt reports whether some RUNNABLE process should preempt a
// process running at priority: with samePriority false, only a strictly
// higher-priority (lower-numbered) candidate counts; with samePriority
// true, an equal-priority candidate counts too (the slice-elapsed
// round-robin case).
func (t *Table_t) CheckPreempt(priority int, samePriority bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.checkPreemptLocked(priority, samePriority)
}

// checkPreemptLocked is CheckPreempt's internal twin for callers that
// already hold t.mu (the pbs build's onTick/onSetPriority hooks).
func (t *Table_t) checkPreemptLocked(priority int, samePriority bool) bool {
	for _, p := range t.procs {
		if p.State != common.RUNNABLE {
			continue
		}
		if p.Priority < priority || (samePriority && p.Priority == priority) {
			return true
		}
	}
	return false
}

// Pinfo is a point-in-time, lock-free snapshot of one PCB for ps/printpinfos.
// Copied out under the table lock so the tablewriter rendering in cmd/ps
// never races the scheduler.
type Pinfo struct {
	Pid       common.Pid_t
	Name      string
	State     string
	Priority  int
	CurrQueue int
	Rtime     int64
	Wtime     int64
	NRun      int64
	Ticks     [common.NumQueues]int64
}

// PrintPInfos snapshots every live (non-UNUSED) PCB, in table order,
// matching procdump()'s own per-process columns — pid, name, state,
// priority, current queue, rtime, wtime, n_run, and the five per-queue
// tick counters. Rate-limited alongside Kill since both are table-scanning
// syscalls a hostile caller could otherwise spam.
func (t *Table_t) PrintPInfos() []Pinfo {
	if !t.allowSyscall("printpinfos") {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Pinfo, 0, len(t.procs))
	for _, p := range t.procs {
		if p.State == common.UNUSED {
			continue
		}
		out = append(out, Pinfo{
			Pid:       p.Pid,
			Name:      p.Name,
			State:     p.State.String(),
			Priority:  p.Priority,
			CurrQueue: p.CurrQueue,
			Rtime:     p.Rtime,
			Wtime:     p.Wtime,
			NRun:      p.NRun,
			Ticks:     p.Ticks,
		})
	}

	if e := logging.Log.Debug(); e.Enabled() {
		e.Str("dump", spew.Sdump(out)).Msg("printpinfos snapshot")
	}

	return out
}

// Getpid returns p's own pid, the Go rendering of the getpid() syscall. A
// process always knows its own pid directly off the *common.Proc_t it was
// handed at fork time, so unlike kill/printpinfos this needs no table
// lookup or lock.
func (t *Table_t) Getpid(p *common.Proc_t) common.Pid_t {
	return p.Pid
}
