// Package logging holds the process-wide logger.
// Command output goes to stdout, so log lines are written to stderr.
package logging

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.Out = os.Stderr
	Log.SetLevel(logrus.InfoLevel)
}

// Setup sets the log level by name ("debug", "info", "warn", ...).
func Setup(level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	Log.SetLevel(lvl)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: lvl < logrus.DebugLevel,
	})
	return nil
}

// Debug will switch the verbosity of the logger.
func Debug(t bool) {
	if t {
		Log.Level = logrus.DebugLevel
	} else {
		Log.Level = logrus.WarnLevel
	}
}
