// Package logger writes prefixed, coloured log lines for the application's
// components.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/maze-solver/config"
	"github.com/beka-birhanu/maze-solver/service/i"
)

var ErrNilWriter = errors.New("logger needs a writer")

// Logger tags every line with a coloured component prefix and a level.
type Logger struct {
	out    *log.Logger
	prefix string
	color  string
}

// New creates a Logger writing to w. color is one of the config color
// constants; pass "" for plain output.
func New(prefix, color string, w io.Writer) (i.Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		out:    log.New(w, "", log.LstdFlags),
		prefix: prefix,
		color:  color,
	}, nil
}

func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

func (l *Logger) Warn(msg string) {
	l.write(config.LogWarnColor, "WARN", msg)
}

func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	)
}
