//go:build fcfs

package sched

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixel-z/xv6-Modified/internal/common"
)

func TestFCFSPicksEarliestArrival(t *testing.T) {
	tbl := &Table_t{procs: []*common.Proc_t{
		{Pid: 3, State: common.RUNNABLE, Ctime: 30},
		{Pid: 1, State: common.RUNNABLE, Ctime: 10},
		{Pid: 2, State: common.RUNNABLE, Ctime: 20},
	}}

	p := pick(tbl)
	require.Equal(t, common.Pid_t(1), p.Pid)
}

func TestFCFSBreaksTiesByPid(t *testing.T) {
	tbl := &Table_t{procs: []*common.Proc_t{
		{Pid: 5, State: common.RUNNABLE, Ctime: 10},
		{Pid: 2, State: common.RUNNABLE, Ctime: 10},
	}}

	p := pick(tbl)
	require.Equal(t, common.Pid_t(2), p.Pid)
}

func TestFCFSNeverRequestsPreempt(t *testing.T) {
	p := &common.Proc_t{State: common.RUNNING}
	onTick(&Table_t{}, p)
	require.False(t, p.PreemptReq)
}

func TestFCFSOnDispatchLeavesNRunAtZero(t *testing.T) {
	p := &common.Proc_t{}
	onDispatch(&Table_t{}, p)
	require.Zero(t, p.NRun, "n_run is an MLFQ-only counter")
}
