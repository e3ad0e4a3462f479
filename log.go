package mdu

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger builds the package's default structured logger.
//
// It is silent at the default WARN level and only traces queue lifecycle
// events (task execution, shutdown sentinels observed) at DEBUG, gated by
// -v. It writes to out, which Run sets to its stderr stream, the same
// stream the permission diagnostics go to; the per-root result line and
// permission diagnostics are always written directly with fmt.Fprintf,
// never through this logger.
func newLogger(verbose bool, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.WarnLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
