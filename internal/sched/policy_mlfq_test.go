//go:build mlfq

package sched

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixel-z/xv6-Modified/internal/common"
)

func TestMLFQPickReturnsHighestNonEmptyQueueHead(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank()}
	low := &common.Proc_t{Pid: 1}
	high := &common.Proc_t{Pid: 2}
	tbl.shiftProcQ(low, -1, 3, 0)
	tbl.shiftProcQ(high, -1, 1, 0)

	p := pick(tbl)
	require.Equal(t, common.Pid_t(2), p.Pid, "queue 1 outranks queue 3")

	// pick removes the PCB from its queue.
	require.Empty(t, tbl.queues.snapshot(1))
}

func TestMLFQOnTickDemotesOnSliceExhaustion(t *testing.T) {
	p := &common.Proc_t{CurrQueue: 0}
	tbl := &Table_t{queues: newQueueBank(), cfg: testConfig()}

	onTick(tbl, p) // QTicksMax[0] == 1, so one tick exhausts the slice
	require.True(t, p.ChangeQ)
	require.True(t, p.PreemptReq)
}

func TestMLFQOnTickDoesNotDemoteMidSlice(t *testing.T) {
	p := &common.Proc_t{CurrQueue: 4} // QTicksMax[4] == 16
	tbl := &Table_t{queues: newQueueBank(), cfg: testConfig()}

	onTick(tbl, p)
	require.False(t, p.ChangeQ)
	require.False(t, p.PreemptReq)
}

func TestMLFQOnTickHonorsConfiguredSliceOverride(t *testing.T) {
	cfg := testConfig()
	cfg.QTicksMax[0] = 3
	tbl := &Table_t{queues: newQueueBank(), cfg: cfg}
	p := &common.Proc_t{CurrQueue: 0}

	onTick(tbl, p)
	require.False(t, p.ChangeQ, "configured slice is 3 ticks, one tick must not exhaust it")

	onTick(tbl, p)
	onTick(tbl, p)
	require.True(t, p.ChangeQ, "third tick exhausts the configured 3-tick slice")
}

func TestMLFQOnReturnedRunnableDemotesAndResetsSlice(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank()}
	p := &common.Proc_t{Pid: 1, CurrQueue: 0, CurrTicks: 1, ChangeQ: true}

	onReturnedRunnable(tbl, p)

	require.Equal(t, 1, p.CurrQueue)
	require.Equal(t, 0, p.CurrTicks)
	require.False(t, p.ChangeQ)
	require.Equal(t, []*common.Proc_t{p}, tbl.queues.snapshot(1))
}

func TestMLFQOnReturnedRunnableStaysInQueueWithoutChangeQ(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank()}
	p := &common.Proc_t{Pid: 1, CurrQueue: 2}

	onReturnedRunnable(tbl, p)

	require.Equal(t, 2, p.CurrQueue)
	require.Equal(t, []*common.Proc_t{p}, tbl.queues.snapshot(2))
}

func TestMLFQOnReturnedRunnableFloorsAtLowestQueue(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank()}
	p := &common.Proc_t{Pid: 1, CurrQueue: common.NumQueues - 1, ChangeQ: true}

	onReturnedRunnable(tbl, p)

	require.Equal(t, common.NumQueues-1, p.CurrQueue)
}

func TestMLFQAgingSweepPromotesStarvedProcess(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank(), ticks: 100, cfg: testConfig()}
	p := &common.Proc_t{Pid: 1, State: common.RUNNABLE}
	tbl.shiftProcQ(p, -1, 2, 0) // entered queue 2 at tick 0

	mlfqAgingSweep(tbl)

	require.Equal(t, 1, p.CurrQueue, "waited 100 > Age(20) ticks, must be promoted one level")
}

func TestMLFQAgingSweepLeavesFreshEntriesAlone(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank(), ticks: 5, cfg: testConfig()}
	p := &common.Proc_t{Pid: 1, State: common.RUNNABLE}
	tbl.shiftProcQ(p, -1, 2, 0)

	mlfqAgingSweep(tbl)

	require.Equal(t, 2, p.CurrQueue)
}

func TestMLFQAgingSweepHonorsConfiguredThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.Age = 200
	tbl := &Table_t{queues: newQueueBank(), ticks: 100, cfg: cfg}
	p := &common.Proc_t{Pid: 1, State: common.RUNNABLE}
	tbl.shiftProcQ(p, -1, 2, 0)

	mlfqAgingSweep(tbl)

	require.Equal(t, 2, p.CurrQueue, "configured threshold is 200, 100 ticks must not promote yet")
}

func TestMLFQOnDispatchIncrementsNRun(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank()}
	p := &common.Proc_t{Pid: 1}

	onDispatch(tbl, p)
	onDispatch(tbl, p)

	require.Equal(t, int64(2), p.NRun)
}

func TestMLFQOnBecameRunnableEntersAtCurrQueue(t *testing.T) {
	tbl := &Table_t{queues: newQueueBank()}
	p := &common.Proc_t{Pid: 1, CurrQueue: 3}

	onBecameRunnable(tbl, p)

	require.Equal(t, []*common.Proc_t{p}, tbl.queues.snapshot(3))
}
