package sched

import "github.com/pixel-z/xv6-Modified/internal/config"

// testConfig is a small process table for tests: big enough for a handful
// of forked children plus init, small enough that table-full behavior is
// easy to exercise deliberately.
func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.NProc = 8
	return cfg
}
