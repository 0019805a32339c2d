// Package logx adapts logrus to the key/value logging interface used by the commands.
package logx

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// LevelVariable names the environment variable which overrides the default info level.
const LevelVariable = "LOG_LEVEL"

// Logger writes records with key/value pairs as logrus fields.
type Logger struct {
	entry *logrus.Entry
}

// New builds a text logger writing to w at the given level. An empty or unknown level means info.
func New(w io.Writer, level string) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &Logger{entry: logrus.NewEntry(l)}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.with(args).Debug(msg)
}

// Fatal logs at fatal level and terminates the process with status 1.
func (l *Logger) Fatal(msg string, args ...any) {
	l.with(args).Fatal(msg)
}

// Logrus exposes the underlying logger.
func (l *Logger) Logrus() *logrus.Logger {
	return l.entry.Logger
}

func (l *Logger) with(args []any) *logrus.Entry {
	if len(args) == 0 {
		return l.entry
	}
	fields := make(logrus.Fields, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 == len(args) {
			fields["!BADKEY"] = args[i]
			break
		}
		fields[key] = args[i+1]
	}
	return l.entry.WithFields(fields)
}
