// Package logger provides the structured logging surface used by the
// pipeline and search layers. The numeric core does not log.
package logger

// Logger is the logging interface consumed throughout the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop discards all log events. Useful in tests.
type Nop struct{}

func (Nop) Debug(string, string, map[string]interface{}) {}

func (Nop) Info(string, string, map[string]interface{}) {}

func (Nop) Warning(string, string, map[string]interface{}) {}

func (Nop) Error(string, error, map[string]interface{}) {}
