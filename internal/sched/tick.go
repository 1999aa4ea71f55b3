package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

// Tick is the clock handler, the Go rendering of xv6's own timer
// interrupt handler calling into the scheduler bookkeeping: one
// clock.Source delivery drives exactly one call. It advances the global
// tick count, accounts rtime/wtime for every live process, runs the MLFQ
// aging sweep, and asks the active policy whether the currently RUNNING
// process should be preempted.
func (t *Table_t) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ticks++

	var running *common.Proc_t
	for _, p := range t.procs {
		switch p.State {
		case common.RUNNING:
			p.Rtime++
			running = p
		case common.SLEEPING, common.RUNNABLE:
			p.Wtime++
		}
	}

	agingSweep(t)

	if running != nil {
		onTick(t, running)
	}
}

// agingSweep promotes any RUNNABLE MLFQ process that has waited longer
// than the configured aging threshold in its current queue. A no-op under
// non-MLFQ builds (mlfqAgingSweep is a no-op there).
func agingSweep(t *Table_t) {
	mlfqAgingSweep(t)
}
