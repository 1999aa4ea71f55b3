package sched

import (
	"time"

	"github.com/pixel-z/xv6-Modified/internal/clock"
	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/config"
	"github.com/pixel-z/xv6-Modified/internal/logging"
)

// Workload is a unit of simulated user-mode work: a CPU-bound loop that
// checks in with the scheduler every iteration, the cooperative stand-in
// for a timer trap interrupting a real user program, running for the given
// number of iterations (or until killed). It never sleeps.
type Workload struct {
	Name  string
	Iters int
}

// Demo boots a Table_t, an init process, a dispatch loop goroutine per
// ncpu, and a set of workload children, for use by cmd/ps, cmd/setpriority,
// and cmd/kernel (cmd/time builds its own Table_t): each tool boots its own embedded
// single-process kernel instance rather than attaching to a separately
// booted one.
type Demo struct {
	Table *Table_t
	Clock clock.Source

	stop chan struct{}
}

// NewDemo constructs and boots a Demo with ncpu dispatch loops and the
// given workloads forked as children of init. tickPeriod > 0 arms a real
// interval-timer clock (internal/clock.RealTimer) internally; tickPeriod
// == 0 leaves ticking to the caller (cmd/kernel and cmd/ps drive
// d.Table.Tick() themselves so they can interleave snapshot rendering with
// ticks deterministically). Tests call Tick directly on a bare Table_t
// instead of going through Demo at all.
func NewDemo(cfg config.Config, ncpu int, workloads []Workload, tickPeriod time.Duration) *Demo {
	t := NewTable(cfg)
	d := &Demo{Table: t, stop: make(chan struct{})}

	init := t.Userinit()

	for _, w := range workloads {
		w := w
		_, err := t.Fork(init, w.Name, func(self *common.Proc_t) {
			for i := 0; i < w.Iters && !self.Killed; i++ {
				t.CheckIn(self)
			}
		})
		if err != common.EOK {
			logging.Log.Warn().Str("workload", w.Name).Msg("fork failed: process table full")
		}
	}

	for i := 0; i < ncpu; i++ {
		go t.Run(d.stop)
	}

	if tickPeriod > 0 {
		rt := clock.NewRealTimer(tickPeriod)
		d.Clock = rt
		go rt.Run(t.Tick)
	}

	return d
}

// Shutdown stops every dispatch loop and the clock.
func (d *Demo) Shutdown() {
	close(d.stop)
	if d.Clock != nil {
		d.Clock.Stop()
	}
}
