package mdu

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrNoPaths is returned by ParseArgs when no path argument was supplied.
var ErrNoPaths = errors.New("mdu: at least one path is required")

// Config is everything Run needs to process a set of roots: the roots
// themselves, the worker count, the output streams, and an optional
// logger. The zero value is almost usable: Workers < 1 is treated as 1,
// and nil streams/logger fall back to os.Stdout/os.Stderr/a WARN-level
// logrus.Logger in Run.
type Config struct {
	// Roots are the paths to report on, in the order they should be
	// printed.
	Roots []string

	// Workers is the worker pool size. Values < 1 mean sequential mode:
	// absence of -j is equivalent to -j 1.
	Workers int

	// Verbose gates debug-level queue lifecycle tracing. The default logger
	// writes these traces to Stderr; the result line and the permission
	// diagnostic themselves are unchanged.
	Verbose bool

	Stdout io.Writer
	Stderr io.Writer
	Logger *logrus.Logger
}

// ParseArgs parses mdu's CLI grammar: `[-j N] <path> [<path> ...]`, with
// -j and its positional paths freely interleaved and unknown flags silently
// ignored.
//
// This is a hand-rolled scanner rather than flag.FlagSet: the stdlib flag
// package stops parsing at the first non-flag argument and errors on
// unrecognized flags, neither of which fits a grammar where -j may appear
// anywhere among paths and unrecognized flags must be tolerated. Grounded
// on the source's getopt-based flag_options + path_name_parser; Run itself
// only ever consumes a Config, however it was produced, so this scanner is
// the one place argument parsing lives.
//
// If -j is immediately followed by a non-numeric or non-positive value,
// the worker count falls back to 1 rather than the source's latent
// zero-worker behavior.
func ParseArgs(args []string) (Config, error) {
	cfg := Config{Workers: 1}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "-j":
			i++
			if i < len(args) {
				cfg.Workers = parseWorkerCount(args[i])
			}
		case strings.HasPrefix(arg, "-j"):
			cfg.Workers = parseWorkerCount(strings.TrimPrefix(arg, "-j"))
		case arg == "-v":
			cfg.Verbose = true
		case strings.HasPrefix(arg, "-"):
			// Unknown flag: silently ignored.
		default:
			cfg.Roots = append(cfg.Roots, arg)
		}
	}

	if len(cfg.Roots) == 0 {
		return cfg, ErrNoPaths
	}

	return cfg, nil
}

func parseWorkerCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}

	return n
}
