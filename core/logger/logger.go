package logger

import "fmt"

type Level string

const (
	Info Level = "info"
	Warn Level = "warn"
)

type Msg struct {
	Level Level
	Msg   string
}

// Logger collects diagnostics emitted while generating artifacts so that
// callers can report them alongside the result instead of losing them to
// stderr.
type Logger struct {
	Logs []Msg
}

func NewLogger() *Logger {
	return &Logger{
		Logs: []Msg{},
	}
}

func (l *Logger) LogInfo(format string, args ...interface{}) {
	l.log(Info, format, args...)
}

func (l *Logger) LogWarn(format string, args ...interface{}) {
	l.log(Warn, format, args...)
}

// Warnings returns the warning-level messages collected so far.
func (l *Logger) Warnings() []Msg {
	warnings := []Msg{}
	for _, msg := range l.Logs {
		if msg.Level == Warn {
			warnings = append(warnings, msg)
		}
	}
	return warnings
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.Logs = append(l.Logs, Msg{
		Level: level,
		Msg:   msg,
	})
}
