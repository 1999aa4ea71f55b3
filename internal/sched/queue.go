package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

// queueBank_t holds the five MLFQ FIFO queues. Queue 0 is highest priority.
// Each queue is a plain slice acting as a FIFO: index 0 is the head,
// append is the tail.
//
// Grounded on original_source/proc.c's queue[5][NPROC] + q_size[5] arrays,
// translated to Go slices; shiftProcQ preserves the exact three-mode
// contract (insert/remove/move) the C shift_proc_q implements, including
// "duplicate insert is a no-op" and "remove of an absent pid fails".
type queueBank_t struct {
	q [common.NumQueues][]*common.Proc_t
}

func newQueueBank() queueBank_t {
	return queueBank_t{}
}

// indexOf returns the position of p within q[i], or -1.
func (b *queueBank_t) indexOf(i int, p *common.Proc_t) int {
	for idx, entry := range b.q[i] {
		if entry.Pid == p.Pid {
			return idx
		}
	}
	return -1
}

// removeAt removes q[i][idx], preserving the order of the remaining
// entries: removal shifts subsequent entries down by one index.
func (b *queueBank_t) removeAt(i, idx int) {
	b.q[i] = append(b.q[i][:idx], b.q[i][idx+1:]...)
}

// shiftProcQ is the single MLFQ mutation primitive, the Go rendering of
// the original's shift_proc_q:
//
//	qi == -1: insert p at the tail of qf (no-op if already present).
//	qf == -1: remove p from qi (failure if absent).
//	both >= 0: atomic move preserving tail-insert semantics on qf.
//
// now is the current tick count, stamped onto p.Enter on every insert (used
// by the aging sweep and by the per-tick aging check).
func (t *Table_t) shiftProcQ(p *common.Proc_t, qi, qf int, now int64) bool {
	b := &t.queues

	if qf == -1 {
		idx := b.indexOf(qi, p)
		if idx == -1 {
			return false
		}
		b.removeAt(qi, idx)
		return true
	}

	if qi == -1 {
		if b.indexOf(qf, p) != -1 {
			return false
		}
		p.Enter = now
		p.CurrQueue = qf
		b.q[qf] = append(b.q[qf], p)
		return true
	}

	// Both valid: move, preserving tail-insert semantics on the
	// destination.
	idx := b.indexOf(qi, p)
	if idx == -1 {
		return false
	}
	b.removeAt(qi, idx)
	if b.indexOf(qf, p) != -1 {
		return false
	}
	p.Enter = now
	p.CurrQueue = qf
	b.q[qf] = append(b.q[qf], p)
	return true
}

// snapshot returns a copy of queue i's entries, so the aging sweep in
// Tick can iterate it while shiftProcQ mutates the live queue underneath —
// the original's own MLFQ aging loop in scheduler() mutates the queue it
// iterates, which this module avoids by iterating a copy instead.
func (b *queueBank_t) snapshot(i int) []*common.Proc_t {
	out := make([]*common.Proc_t, len(b.q[i]))
	copy(out, b.q[i])
	return out
}
