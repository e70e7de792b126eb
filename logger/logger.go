// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. It is usable before Init is called.
var Log = logrus.New()

// Init configures the logger. Empty arguments keep the defaults (info, json).
func Init(options ...string) {
	level, format := "info", "json"
	if len(options) > 0 && options[0] != "" {
		level = options[0]
	}
	if len(options) > 1 && options[1] != "" {
		format = options[1]
	}

	Log.SetOutput(os.Stdout)

	if format == "text" {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown log level, falling back to info")
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
