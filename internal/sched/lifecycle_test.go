//go:build rr || fcfs || pbs || mlfq

package sched

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/pixel-z/xv6-Modified/internal/common"
)

// runBriefly starts one dispatch loop for the table, runs fn, and stops the
// loop afterward. A real goroutine scheduler drives the simulated
// processes, so tests poll with a short timeout instead of single-stepping.
func runBriefly(t *testing.T, tbl *Table_t, fn func()) {
	t.Helper()
	stop := make(chan struct{})
	go tbl.Run(stop)
	defer close(stop)
	fn()
}

// eventually polls cond until it passes or timeout elapses. On failure it
// dumps tbl's PCB snapshot via go-spew so a flaky/hung test shows exactly
// what state every process was left in, instead of just "timed out."
func eventually(t *testing.T, tbl *Table_t, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	require.Fail(t, "condition not met within timeout", "process table:\n%s", spew.Sdump(tbl.PrintPInfos()))
}

func TestForkExitWaitRoundtrip(t *testing.T) {
	tbl := NewTable(testConfig())
	init := tbl.Userinit()

	runBriefly(t, tbl, func() {
		// Wait blocks via Sched, so the waiter must be a dispatched process;
		// init never is, so a forked "parent" does the fork and the waits.
		var childPid, pid common.Pid_t
		var forkErr, waitErr, againErr common.Err_t
		done := make(chan struct{})
		_, errp := tbl.Fork(init, "parent", func(self *common.Proc_t) {
			defer close(done)
			childPid, forkErr = tbl.Fork(self, "child", func(c *common.Proc_t) {
				// exits immediately
			})
			pid, waitErr = tbl.Wait(self)
			_, againErr = tbl.Wait(self)
		})
		require.Equal(t, common.EOK, errp)
		<-done

		require.Equal(t, common.EOK, forkErr)

		require.Equal(t, common.EOK, waitErr)
		require.Equal(t, childPid, pid)

		require.Equal(t, common.ECHILD, againErr, "no more children left to reap")
	})
}

func TestOrphanReparentsToInit(t *testing.T) {
	tbl := NewTable(testConfig())
	init := tbl.Userinit()

	runBriefly(t, tbl, func() {
		var grandchildPid common.Pid_t
		parentDone := make(chan struct{})

		_, errc := tbl.Fork(init, "parent", func(self *common.Proc_t) {
			pid, errc := tbl.Fork(self, "grandchild", func(gc *common.Proc_t) {})
			require.Equal(t, common.EOK, errc)
			grandchildPid = pid
			close(parentDone)
			// parent exits without waiting; grandchild is orphaned to init
		})
		require.Equal(t, common.EOK, errc)

		<-parentDone
		eventually(t, tbl, time.Second, func() bool {
			pid, _, _, found := tbl.ReapChild(init)
			return found && pid == grandchildPid
		})
	})
}

func TestKillWakesSleepingProcess(t *testing.T) {
	tbl := NewTable(testConfig())
	init := tbl.Userinit()
	chanToken := "some-resource"

	var woke bool
	done := make(chan struct{})

	runBriefly(t, tbl, func() {
		pid, errc := tbl.Fork(init, "sleeper", func(self *common.Proc_t) {
			tbl.Sleep(self, chanToken)
			woke = true
			close(done)
		})
		require.Equal(t, common.EOK, errc)

		eventually(t, tbl, time.Second, func() bool {
			tbl.mu.Lock()
			defer tbl.mu.Unlock()
			p := tbl.find(pid)
			return p != nil && p.State == common.SLEEPING
		})

		require.Equal(t, common.EOK, tbl.Kill(pid))
		<-done
		require.True(t, woke)
	})
}

func TestWaitxAccountsRtimeWtime(t *testing.T) {
	tbl := NewTable(testConfig())
	init := tbl.Userinit()

	runBriefly(t, tbl, func() {
		childPid, errc := tbl.Fork(init, "child", func(self *common.Proc_t) {
			for i := 0; i < 5; i++ {
				tbl.CheckIn(self)
			}
		})
		require.Equal(t, common.EOK, errc)

		tickDone := make(chan struct{})
		tickStopped := make(chan struct{})
		go func() {
			defer close(tickStopped)
			for {
				select {
				case <-tickDone:
					return
				default:
					tbl.Tick()
					time.Sleep(time.Millisecond)
				}
			}
		}()

		eventually(t, tbl, time.Second, func() bool {
			tbl.mu.Lock()
			defer tbl.mu.Unlock()
			c := tbl.find(childPid)
			return c != nil && c.State == common.ZOMBIE
		})

		// Waitx re-stamps Etime with the tick count at reap time, so stop
		// ticking first: Tick only touches RUNNING/SLEEPING/RUNNABLE procs,
		// and with the tick count frozen the expected values below hold
		// until Waitx reaps the child.
		close(tickDone)
		<-tickStopped

		tbl.mu.Lock()
		c := tbl.find(childPid)
		wantRtime := c.Rtime
		wantWtime := tbl.ticks - c.Ctime - c.Rtime
		tbl.mu.Unlock()

		pid, rtime, wtime, errw := tbl.Waitx(init)
		require.Equal(t, common.EOK, errw)
		require.Equal(t, childPid, pid)
		require.Equal(t, wantRtime, rtime, "rtime must equal the child's accumulated running time")
		require.Equal(t, wantWtime, wtime, "wtime must equal etime - ctime - rtime")
	})
}

func TestForkFailsWhenTableFull(t *testing.T) {
	cfg := testConfig()
	cfg.NProc = 1 // only room for init
	tbl := NewTable(cfg)
	init := tbl.Userinit()

	_, errc := tbl.Fork(init, "child", func(self *common.Proc_t) {})
	require.Equal(t, common.ENOMEM, errc)
}

func TestGetpidReturnsOwnPid(t *testing.T) {
	tbl := NewTable(testConfig())
	init := tbl.Userinit()

	require.Equal(t, init.Pid, tbl.Getpid(init))
}

func TestSetPriorityClampsToRange(t *testing.T) {
	tbl := NewTable(testConfig())
	init := tbl.Userinit()

	_, errc := tbl.SetPriority(init.Pid, 1000)
	require.Equal(t, common.EOK, errc)
	require.Equal(t, common.MaxPriority, init.Priority)

	_, errc = tbl.SetPriority(init.Pid, -5)
	require.Equal(t, common.EOK, errc)
	require.Equal(t, common.MinPriority, init.Priority)
}

func TestSetPriorityUnknownPidReturnsESRCH(t *testing.T) {
	tbl := NewTable(testConfig())
	_, errc := tbl.SetPriority(9999, 50)
	require.Equal(t, common.ESRCH, errc)
}
