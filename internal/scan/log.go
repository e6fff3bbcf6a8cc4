package scan

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a structured logger for a scan. Debug-level output
// surfaces skip-policy decisions and directory-read failures from the
// walker without propagating them to the caller; other per-entry probe
// and permission failures are not logged.
func NewLogger(debug bool) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{})

	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return logrus.NewEntry(log)
}
