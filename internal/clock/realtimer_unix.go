//go:build unix

package clock

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// RealTimer arms a genuine interval timer (setitimer(2)) that delivers
// SIGALRM at the requested period, and forwards each delivery to onTick.
// sched.NewDemo arms one when given a positive tick period; the cmd/*
// tools pass 0 and call Table_t.Tick themselves.
type RealTimer struct {
	Period time.Duration

	mu      sync.Mutex
	sigCh   chan os.Signal
	stopped bool
}

// NewRealTimer builds a RealTimer with the given tick period. period must
// be positive.
func NewRealTimer(period time.Duration) *RealTimer {
	return &RealTimer{Period: period}
}

// Run arms ITIMER_REAL to fire every r.Period and calls onTick for each
// SIGALRM received, until Stop is called.
func (r *RealTimer) Run(onTick func()) {
	r.mu.Lock()
	r.sigCh = make(chan os.Signal, 1)
	signal.Notify(r.sigCh, syscall.SIGALRM)
	r.mu.Unlock()

	usec := r.Period.Microseconds()
	it := &unix.Itimerval{
		Interval: unix.Timeval{Sec: usec / 1e6, Usec: usec % 1e6},
		Value:    unix.Timeval{Sec: usec / 1e6, Usec: usec % 1e6},
	}
	if err := unix.Setitimer(unix.ITIMER_REAL, it, nil); err != nil {
		panic("clock: setitimer: " + err.Error())
	}

	for range r.sigCh {
		onTick()
	}
}

// Stop disarms the interval timer and unblocks Run.
func (r *RealTimer) Stop() {
	_ = unix.Setitimer(unix.ITIMER_REAL, &unix.Itimerval{}, nil)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sigCh != nil && !r.stopped {
		r.stopped = true
		signal.Stop(r.sigCh)
		close(r.sigCh)
	}
}
