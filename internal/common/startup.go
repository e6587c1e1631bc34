package common

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureCommandLineLogging sends log lines to stderr so stdout carries
// only the per-submission job names.
func ConfigureCommandLineLogging() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}
