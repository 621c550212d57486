package core

import "github.com/golang/glog"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// GlogLogger forwards renderer logging to glog
type GlogLogger struct {
	verbosity glog.Level
}

// NewGlogLogger returns a Logger writing at info level
func NewGlogLogger() *GlogLogger {
	return &GlogLogger{}
}

// NewVerboseGlogLogger returns a Logger that only writes when -v is at least level
func NewVerboseGlogLogger(level int) *GlogLogger {
	return &GlogLogger{verbosity: glog.Level(level)}
}

// Printf implements Logger
func (l *GlogLogger) Printf(format string, args ...interface{}) {
	if l.verbosity == 0 {
		glog.Infof(format, args...)
		return
	}
	glog.V(l.verbosity).Infof(format, args...)
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}
