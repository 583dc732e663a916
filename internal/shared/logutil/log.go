package logutil

type Log interface {
	Fatalf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(key string, format string, args ...interface{})

	Child(name string) Log
	SetLevel(level LogLevel)
}

type LogLevel int

const (
	// debug messages, printed only for enabled debug keys
	LogLevelDebug LogLevel = 0

	// every stage decision: fork status, pages classification, issue actions
	LogLevelInfo LogLevel = 1

	// degraded stages: a failed GitHub call that the run survives
	LogLevelWarn LogLevel = 2

	// failed mutations and configuration problems
	LogLevelError LogLevel = 3
)

// ParseLevel maps a LOG_LEVEL value to a LogLevel, ok is false for unknown names.
func ParseLevel(s string) (LogLevel, bool) {
	switch s {
	case "debug":
		return LogLevelDebug, true
	case "info":
		return LogLevelInfo, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	}

	return LogLevelInfo, false
}
