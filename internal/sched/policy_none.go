//go:build !rr && !fcfs && !pbs && !mlfq

// Package sched, no-policy build: exactly one of rr/fcfs/pbs/mlfq must be
// selected at build time, the Go rendering of the original's
// #ifdef RR/FCFS/PBS/MLFQ. Compiling without any of them is a build
// misconfiguration, not a runtime condition, so it fails as loudly and as
// early as possible.
package sched

import "github.com/pixel-z/xv6-Modified/internal/common"

func init() {
	panic("sched: no dispatch policy selected; build with one of -tags rr,fcfs,pbs,mlfq")
}

// The stubs below exist only so this build variant type-checks; init's
// panic guarantees none of them ever run.
func policyName() string                                      { return "NONE" }
func pick(t *Table_t) *common.Proc_t                           { return nil }
func onDispatch(t *Table_t, p *common.Proc_t)                  {}
func onTick(t *Table_t, running *common.Proc_t)                {}
func onSetPriority(t *Table_t, p *common.Proc_t, old, new int) {}
func onBecameRunnable(t *Table_t, p *common.Proc_t)            {}
func onRemoveFromQueues(t *Table_t, p *common.Proc_t)          {}
func onReturnedRunnable(t *Table_t, p *common.Proc_t)          {}
func mlfqAgingSweep(t *Table_t)                                {}
