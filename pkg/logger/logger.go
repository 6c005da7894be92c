package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared app logger. The pipeline is a short one-shot batch,
// so no timestamps, just leveled lines. DEBUG=1 turns on per-frame logs.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	level := logrus.InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	return log
}
