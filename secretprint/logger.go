package secretprint

// Logger represents basic logging behavior
type Logger interface {
	Debug(msg string, args ...any)
}

// NoopLogger represents logger which produce no output
type NoopLogger struct{}

func (n NoopLogger) Debug(msg string, args ...any) {}

// NewNoopLogger builds new NoopLogger
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}
