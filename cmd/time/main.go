// Command time boots an embedded kernel instance, forks one workload, waits
// for it to become a zombie, and prints its accounted run/wait time, the
// Go rendering of xv6's own time user program built around waitx().
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/config"
	"github.com/pixel-z/xv6-Modified/internal/sched"
)

func main() {
	var cfgPath string
	var iters int
	var tickPeriod time.Duration

	cmd := &cobra.Command{
		Use:   "time",
		Short: "fork a workload and report its rtime/wtime via waitx",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			t := sched.NewTable(cfg)
			init := t.Userinit()

			// waiter is the worker's actual parent, so it can call Waitx on
			// itself: Waitx blocks the calling process's own goroutine until one
			// of its own children zombies, so the reaper must itself be a
			// dispatched process, not the harness's own main goroutine.
			waiterDone := make(chan struct{})
			var pid common.Pid_t
			var rtime, wtime int64
			_, errc := t.Fork(init, "waiter", func(self *common.Proc_t) {
				_, errw := t.Fork(self, "worker", func(w *common.Proc_t) {
					for i := 0; i < iters && !w.Killed; i++ {
						t.CheckIn(w)
					}
				})
				if errw != common.EOK {
					close(waiterDone)
					return
				}
				pid, rtime, wtime, _ = t.Waitx(self)
				close(waiterDone)
			})
			if errc != common.EOK {
				return fmt.Errorf("fork failed: process table full")
			}

			stop := make(chan struct{})
			go t.Run(stop)
			go func() {
				for {
					select {
					case <-stop:
						return
					default:
						t.Tick()
						time.Sleep(tickPeriod)
					}
				}
			}()

			<-waiterDone
			close(stop)
			fmt.Printf("pid %d: rtime=%d wtime=%d\n", pid, rtime, wtime)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to an optional TOML config file")
	cmd.Flags().IntVar(&iters, "iters", 200, "number of CheckIn iterations the workload runs")
	cmd.Flags().DurationVar(&tickPeriod, "tick-period", time.Millisecond, "wall-clock delay between driven ticks")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
