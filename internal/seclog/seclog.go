// Package seclog centralizes SRD's two logging idioms: glog-style package
// functions from msgboxio/log for session- and state-machine-level tracing,
// and a go-kit leveled Logger for crypto-operation debug tracing.
package seclog

import (
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/msgboxio/log"
)

// Infof, Warningf and Error forward directly to msgboxio/log for
// session-tracing.
func Infof(format string, args ...interface{})    { log.Infof(format, args...) }
func Warningf(format string, args ...interface{}) { log.Warningf(format, args...) }
func Error(args ...interface{})                   { log.Error(args...) }

// NewCryptoLogger returns a go-kit leveled logger for crypto-operation
// tracing, defaulting to NopLogger so Session callers who never configure
// one pay no cost. Callers install a real logger via
// Session.SetCryptoLogger.
func NewCryptoLogger(base kitlog.Logger) kitlog.Logger {
	if base == nil {
		return kitlog.NewNopLogger()
	}
	return base
}

// Debug logs a crypto-operation trace line at debug level.
func Debug(logger kitlog.Logger, keyvals ...interface{}) {
	level.Debug(logger).Log(keyvals...)
}
