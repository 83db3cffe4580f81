package log

// ILogger is the interface for logging messages at user-defined levels
type ILogger interface {
	Trace(s string)
	Tracef(format string, args ...interface{})
	Debug(n uint32, s string)
	Debugf(n uint32, format string, args ...interface{})
	Info(s string)
	Infof(format string, args ...interface{})
	Warn(s string)
	Warnf(format string, args ...interface{})
	Error(s string)
	Errorf(format string, args ...interface{})
}

// ILoggerFactory is the interface for creating a scoped ILogger
type ILoggerFactory interface {
	NewLogger(scope string) ILogger
}

// Trace emits the preformatted message with the package-level logger
func Trace(s string) {
	std.Trace(s)
}

// Tracef formats and emits a message with the package-level logger
func Tracef(format string, args ...interface{}) {
	std.Tracef(format, args...)
}

// Debug emits the preformatted message with the package-level logger
func Debug(n uint32, s string) {
	std.Debug(n, s)
}

// Debugf formats and emits a message with the package-level logger
func Debugf(n uint32, format string, args ...interface{}) {
	std.Debugf(n, format, args...)
}

// Info emits the preformatted message with the package-level logger
func Info(s string) {
	std.Info(s)
}

// Infof formats and emits a message with the package-level logger
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warn emits the preformatted message with the package-level logger
func Warn(s string) {
	std.Warn(s)
}

// Warnf formats and emits a message with the package-level logger
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Error emits the preformatted message with the package-level logger
func Error(s string) {
	std.Error(s)
}

// Errorf formats and emits a message with the package-level logger
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}
