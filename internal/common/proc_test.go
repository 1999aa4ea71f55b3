package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	cases := map[State_t]string{
		UNUSED:       "UNUSED",
		EMBRYO:       "EMBRYO",
		SLEEPING:     "SLEEPING",
		RUNNABLE:     "RUNNABLE",
		RUNNING:      "RUNNING",
		ZOMBIE:       "ZOMBIE",
		State_t(999): "???",
	}
	for state, want := range cases {
		require.Equal(t, want, state.String())
	}
}

func TestProcResetClearsEverything(t *testing.T) {
	p := &Proc_t{Pid: 7, State: RUNNING, Name: "x", Priority: 12}
	p.NewCoro()
	p.Reset()

	require.Equal(t, Pid_t(0), p.Pid)
	require.Equal(t, UNUSED, p.State)
	require.Equal(t, "", p.Name)
	require.Equal(t, 0, p.Priority)
}

func TestDispatchSchedRoundtrip(t *testing.T) {
	p := &Proc_t{}
	p.NewCoro()

	done := make(chan struct{})
	go func() {
		p.AwaitDispatch()
		p.Sched() // simulate one yield-and-resume cycle
		p.Retire()
		close(done)
	}()

	p.Dispatch() // first dispatch: unblocks AwaitDispatch, waits for Sched's parked send
	p.Dispatch() // second dispatch: unblocks Sched's resume wait, waits for Retire's parked send
	<-done
}
