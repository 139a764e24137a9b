package logger

// NopLogger discards everything except Fatal and Panic, which still stop the program.
type NopLogger struct{}

// NewNopLogger returns a Logger for library callers that do not want log output.
func NewNopLogger() Logger {
	return NopLogger{}
}

func (NopLogger) Debug(...interface{}) {}
func (NopLogger) Info(...interface{})  {}
func (NopLogger) Warn(...interface{})  {}
func (NopLogger) Error(...interface{}) {}

// Fatal panics with the message; a library must not call os.Exit on behalf of its caller.
func (NopLogger) Fatal(args ...interface{}) {
	panic(formatArgs(args...))
}

// Panic panics with the message.
func (NopLogger) Panic(args ...interface{}) {
	panic(formatArgs(args...))
}
