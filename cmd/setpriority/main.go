// Command setpriority boots an embedded kernel instance, forks a couple of
// workloads, and changes one's PBS priority, the Go rendering of xv6's own
// set_priority user program. Meaningful only under the pbs build; under
// other policies it still runs (SetPriority always stores the value) but
// the priority plays no role in dispatch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/config"
	"github.com/pixel-z/xv6-Modified/internal/sched"
)

func main() {
	var cfgPath string
	var pid int
	var priority int

	cmd := &cobra.Command{
		Use:   "setpriority [--pid PID] [--priority N]",
		Short: "change a process's PBS priority",
		Long:  "Takes no positional arguments: the target pid and the new priority come from --pid and --priority.",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			workloads := []sched.Workload{
				{Name: "alpha", Iters: 200},
				{Name: "beta", Iters: 200},
			}
			d := sched.NewDemo(cfg, 1, workloads, 0)
			defer d.Shutdown()

			targetPid := common.Pid_t(pid)
			if targetPid == 0 {
				targetPid = 2 // first forked workload, pid 1 is init
			}

			old, errc := d.Table.SetPriority(targetPid, priority)
			if errc != common.EOK {
				return fmt.Errorf("setpriority: no such process: %d", targetPid)
			}
			fmt.Printf("pid %d: priority %d -> %d\n", targetPid, old, priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to an optional TOML config file")
	cmd.Flags().IntVar(&pid, "pid", 0, "target pid (defaults to the first forked workload)")
	cmd.Flags().IntVar(&priority, "priority", common.DefaultPriority, "new priority, clamped to [0,100]")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
