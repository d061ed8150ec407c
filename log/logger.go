package log

import (
	"fmt"
	"io"
)

// Logger receives the compiler's progress and diagnostic messages.
type Logger interface {
	Log(format string, a ...interface{})
}

var (
	_ Logger = &logger{}
	_ Logger = &stageLogger{}
	_ Logger = &nopLogger{}
)

type logger struct {
	w io.Writer
}

func NewLogger(w io.Writer) (*logger, error) {
	if w == nil {
		return nil, fmt.Errorf("w is nil; NewLogger() needs a writer")
	}
	return &logger{
		w: w,
	}, nil
}

func (l *logger) Log(format string, a ...interface{}) {
	fmt.Fprintf(l.w, format+"\n", a...)
}

type stageLogger struct {
	l     Logger
	stage string
}

// WithStage returns a logger that labels every message with the name of the
// compilation stage emitting it.
func WithStage(l Logger, stage string) Logger {
	return &stageLogger{
		l:     l,
		stage: stage,
	}
}

func (l *stageLogger) Log(format string, a ...interface{}) {
	l.l.Log(l.stage+": "+format, a...)
}

type nopLogger struct {
}

func NewNopLogger() *nopLogger {
	return &nopLogger{}
}

func (l *nopLogger) Log(format string, a ...interface{}) {
}
