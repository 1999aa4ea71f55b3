// Package clock provides the tick source that drives
// internal/sched.Table_t.Tick. In a real kernel, ticks come from a hardware
// timer interrupt; user space has no equivalent privilege, so the real
// implementation here arms an actual OS interval timer (SIGALRM via
// golang.org/x/sys/unix.Setitimer) rather than polling a time.Ticker — the
// closest a process can get to a genuine timer interrupt.
package clock

// Source delivers ticks to a handler until Stop is called.
type Source interface {
	// Run starts delivering ticks, calling onTick once per tick, until
	// Stop is called. RealTimer's Run blocks until Stop unblocks it;
	// Manual's Run only records onTick and returns at once.
	Run(onTick func())
	Stop()
}
