package wad

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger sets the logger used for decode diagnostics. Pass nil to silence it again.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDiscardLogger()
	}
	logger = l
}
