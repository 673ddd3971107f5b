package engine

import "github.com/sirupsen/logrus"

// log is the package logger. The engine never fails hard on bad config or
// bad data; degraded paths log here and continue.
var log logrus.FieldLogger = logrus.StandardLogger().WithField("component", "dimension")

// SetLogger redirects engine diagnostics to the given logger. Passing nil
// is a no-op.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l.WithField("component", "dimension")
	}
}
