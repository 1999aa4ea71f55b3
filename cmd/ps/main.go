// Command ps boots an embedded kernel instance and prints one PrintPInfos
// snapshot as a table, the Go rendering of xv6's own ps user program,
// adapted to boot its own demo kernel rather than attach to one already
// running.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pixel-z/xv6-Modified/internal/config"
	"github.com/pixel-z/xv6-Modified/internal/sched"
)

func main() {
	var cfgPath string
	var settle time.Duration

	cmd := &cobra.Command{
		Use:   "ps",
		Short: "print a snapshot of the process table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			workloads := []sched.Workload{
				{Name: "alpha", Iters: 1000},
				{Name: "beta", Iters: 1000},
			}
			d := sched.NewDemo(cfg, 1, workloads, 0)
			defer d.Shutdown()

			for i := 0; i < 20; i++ {
				d.Table.Tick()
			}
			time.Sleep(settle)

			rows := d.Table.PrintPInfos()
			var buf bytes.Buffer
			table := tablewriter.NewWriter(&buf)
			table.SetHeader([]string{"PID", "NAME", "STATE", "PRIORITY", "QUEUE", "RTIME", "WTIME", "NRUN", "Q0", "Q1", "Q2", "Q3", "Q4"})
			for _, r := range rows {
				row := []string{
					fmt.Sprint(r.Pid), r.Name, r.State,
					fmt.Sprint(r.Priority), fmt.Sprint(r.CurrQueue),
					fmt.Sprint(r.Rtime), fmt.Sprint(r.Wtime), fmt.Sprint(r.NRun),
				}
				for _, tk := range r.Ticks {
					row = append(row, fmt.Sprint(tk))
				}
				table.Append(row)
			}
			table.Render()
			fmt.Print(buf.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to an optional TOML config file")
	cmd.Flags().DurationVar(&settle, "settle", 10*time.Millisecond, "wall-clock delay to let dispatch loops run before snapshotting")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
