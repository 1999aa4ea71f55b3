// Package logging sets up the kernel's structured logger and the
// panic-on-invariant-violation helper used throughout internal/sched.
//
// Grounded on the joeycumines logging family (logiface/izerolog/ilogrus),
// which standardizes on zerolog as its leaf backend; this module talks to
// zerolog directly since the scheduler core has no need for logiface's
// backend-agnostic abstraction layer.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the kernel-wide logger. Tests may redirect its writer; production
// code (cmd/kernel and friends) leaves it pointed at stderr.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// Panicf logs at panic level and then panics, mirroring xv6's panic(): an
// invariant violation is a programmer error, never a recoverable
// condition, so it halts the offending goroutine rather than returning an
// error code.
func Panicf(format string, args ...any) {
	Log.Panic().Msgf(format, args...)
}
