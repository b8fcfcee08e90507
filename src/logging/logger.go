package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var logrusLevels = map[LogLevel]log.Level{
	LevelDebug: log.DebugLevel,
	LevelInfo:  log.InfoLevel,
	LevelWarn:  log.WarnLevel,
	LevelError: log.ErrorLevel,
}

var baseLogger = newBaseLogger(os.Stderr)

func newBaseLogger(out io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(log.InfoLevel)
	l.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	return l
}

// SetOutput redirects log output; used by tests and by callers that want a log file.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// SetLogLevel parses and sets global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	baseLogger.SetLevel(logrusLevels[l])
}

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel {
	switch baseLogger.GetLevel() {
	case log.DebugLevel, log.TraceLevel:
		return LevelDebug
	case log.InfoLevel:
		return LevelInfo
	case log.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

func logf(l LogLevel, format string, args ...interface{}) {
	lvl := logrusLevels[l]
	if !baseLogger.IsLevelEnabled(lvl) {
		return
	}
	// Plain messages are passed through untouched so literal % characters survive.
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	baseLogger.Log(lvl, msg)
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// WithField returns an entry carrying one structured field, for call sites that
// want key=value output instead of a formatted sentence.
func WithField(key string, value interface{}) *log.Entry {
	return baseLogger.WithField(key, value)
}

// Timing helper for phases.
func TimeTrack(start time.Time, label string) {
	dur := time.Since(start)
	Debugf("%s took %s", label, dur)
}
