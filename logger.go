package diagram

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by the package.
// By default nothing is logged. Pass nil to restore the silent logger.
//
// Ignored requests (unknown element or graph kinds, undo or redo on an
// empty history) are reported at debug level only.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
