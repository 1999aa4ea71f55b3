// Package common holds the types shared between the process table, the
// dispatch policies, and the user-facing tool shims — mirroring the role
// Biscuit's own "common" package plays for Proc_t, Fd_t, and Err_t.
package common

// State_t is a PCB's lifecycle state, the Go rendering of xv6's
// UNUSED/EMBRYO/SLEEPING/RUNNABLE/RUNNING/ZOMBIE enum in proc.h.
type State_t int

const (
	UNUSED State_t = iota
	EMBRYO
	SLEEPING
	RUNNABLE
	RUNNING
	ZOMBIE
)

func (s State_t) String() string {
	switch s {
	case UNUSED:
		return "UNUSED"
	case EMBRYO:
		return "EMBRYO"
	case SLEEPING:
		return "SLEEPING"
	case RUNNABLE:
		return "RUNNABLE"
	case RUNNING:
		return "RUNNING"
	case ZOMBIE:
		return "ZOMBIE"
	default:
		return "???"
	}
}

// Pid_t is a process id; 0 means "no process" (e.g. an unused PCB slot or
// the absence of a parent).
type Pid_t int

// NumQueues is the number of MLFQ priority levels.
const NumQueues = 5

// QTicksMax are the MLFQ discipline's built-in per-queue time slice
// allotments in ticks, queue 0 first. Table_t.cfg carries the effective,
// possibly TOML-overridden values actually consulted at runtime; these
// remain as the factory defaults config.Defaults() seeds from.
var QTicksMax = [NumQueues]int{1, 2, 4, 8, 16}

// Age is the MLFQ discipline's built-in aging threshold: ticks a RUNNABLE
// process may wait in a non-top queue before it is promoted one level.
// Table_t.cfg.Age carries the effective, possibly TOML-overridden value.
const Age = 20

// DefaultPriority is the PBS priority assigned to a freshly allocated PCB.
const DefaultPriority = 60

// MinPriority and MaxPriority bound the legal PBS priority range.
const (
	MinPriority = 0
	MaxPriority = 100
)

// Proc_t is one process control block, the Go rendering of xv6's struct
// proc. Table_t (internal/sched) owns a fixed-size array of these, guarded
// by a single lock, exactly as the original's global ptable does.
//
// Fields marked "external collaborator state" stand in for the VM/FS/trap
// machinery this module leaves out of scope; the scheduler core only reads
// Killed and WaitChan and writes State.
type Proc_t struct {
	Pid    Pid_t
	State  State_t
	Parent *Proc_t

	Name string // external collaborator state, kept for ps/printpinfos only

	Killed bool

	// WaitChan is the logical sleep/wakeup rendezvous token, the Go
	// rendering of xv6's p->chan. It is an arbitrary comparable value,
	// distinct from the Go channels below that actually transfer control.
	WaitChan any

	// resume/parked are this module's context-switch-as-coroutine
	// primitive: the dispatch loop sends on resume to run this process and
	// receives from parked when it gives control back. They exist only
	// because this module runs in user space instead of swtch-ing between
	// kernel stacks; xv6 itself has no equivalent fields.
	resume chan struct{}
	parked chan struct{}

	// Timing.
	Ctime int64
	Etime int64
	Rtime int64
	Wtime int64

	// Priority (PBS).
	Priority int

	// MLFQ. NRun counts dispatches and, matching the original's own
	// #ifdef MLFQ-only n_run++ inside scheduler(), is only ever incremented
	// by the mlfq build; it stays 0 for the life of a process under
	// rr/fcfs/pbs.
	CurrQueue int
	CurrTicks int
	Ticks     [NumQueues]int64
	Enter     int64
	ChangeQ   bool
	NRun      int64

	// PreemptReq is simulation plumbing, not a PCB field the original
	// kernel has: since this module has no real timer interrupt that can
	// cut into arbitrary running Go code, CheckIn (the cooperative stand-in
	// for a trap boundary) polls and clears this flag on behalf of the tick
	// handler.
	PreemptReq bool
}

// NewCoro allocates the resume/parked channel pair for a freshly allocated
// PCB. Called once, from alloc, under the table lock.
func (p *Proc_t) NewCoro() {
	p.resume = make(chan struct{})
	p.parked = make(chan struct{})
}

// Dispatch is the per-CPU dispatch loop's half of the context-switch
// primitive: it hands control to p's goroutine and blocks until p gives
// control back, by yielding, sleeping, or exiting.
func (p *Proc_t) Dispatch() {
	p.resume <- struct{}{}
	<-p.parked
}

// AwaitDispatch blocks the calling goroutine (running as process p) until a
// scheduler resumes it. A freshly forked process's goroutine calls this
// once before running any user code, the same way a real forked kernel
// thread's first swtch lands it in forkret waiting to return to user space.
func (p *Proc_t) AwaitDispatch() {
	<-p.resume
}

// Sched hands control back to whichever CPU is running p's dispatch loop
// and blocks until p is dispatched again. Callers (Yield, Sleep) must have
// already changed p.State away from RUNNING under the table lock before
// calling Sched, mirroring the precondition xv6's own sched() asserts
// before every context switch.
func (p *Proc_t) Sched() {
	p.parked <- struct{}{}
	<-p.resume
}

// Retire is Sched's exit-only counterpart: it hands control back to the
// scheduler one last time without waiting to be resumed, since a ZOMBIE PCB
// is never dispatched again. The caller's goroutine returns immediately
// after calling Retire — the Go rendering of xv6's exit() never returning
// to its caller.
func (p *Proc_t) Retire() {
	p.parked <- struct{}{}
}

// Reset clears a PCB back to its zero value in place, preserving the
// channel pair's identity is unnecessary since the slot is UNUSED — callers
// (Wait/Waitx) overwrite it wholesale.
func (p *Proc_t) Reset() {
	*p = Proc_t{}
}
