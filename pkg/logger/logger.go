package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Init must be called once at startup.
var Log *logrus.Logger

// Init configures the global logger from LOG_LEVEL and LOG_FORMAT.
// LOG_FORMAT=json switches to JSON output for log collection; the default
// text formatter is meant for local development.
func Init() {
	Log = logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log.SetOutput(os.Stdout)
}

// SetLevel applies a configured log level, keeping the current level when the
// value does not parse.
func SetLevel(level string) {
	if parsed, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(parsed)
	}
}

func init() {
	// Safe default so packages can log before main calls Init.
	Init()
}
