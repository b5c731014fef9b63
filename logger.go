package partid

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger receives all diagnostics of the package. It is silent by default:
//
//	partid.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
var Logger = zerolog.Nop()

// LogConsumer decorates lifecycle messages of the analyzer manager
// (library wait, dictionary source builds) before handing them to Logger.
type LogConsumer struct {
	Prefix     string
	ShowSource bool
	ShowType   bool
	Level      zerolog.Level
}

func NewLogConsumer() *LogConsumer {
	return &LogConsumer{
		Prefix:     "manager",
		ShowSource: true,
		ShowType:   true,
		Level:      zerolog.DebugLevel,
	}
}

// Log writes each non-empty line of message at the consumer's level.
func (l *LogConsumer) Log(source, message string) {
	for _, line := range strings.Split(message, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		event := Logger.WithLevel(l.Level)
		l.decorate(event, source, "progress").Msg(line)
	}
}

// Err reports a recoverable failure tied to a source.
func (l *LogConsumer) Err(source string, err error, msg string) {
	event := Logger.Warn().Err(err)
	l.decorate(event, source, "failure").Msg(msg)
}

// Status reports a state transition.
func (l *LogConsumer) Status(source, msg string) {
	l.decorate(Logger.Info(), source, "status").Msg(msg)
}

func (l *LogConsumer) decorate(event *zerolog.Event, source, kind string) *zerolog.Event {
	if l.ShowSource && source != "" {
		event = event.Str("source", source)
	}
	if l.ShowType {
		event = event.Str("type", kind)
	}
	if l.Prefix != "" {
		event = event.Str("component", l.Prefix)
	}
	return event
}
