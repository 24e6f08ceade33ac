package base64

import (
	"github.com/sirupsen/logrus"
)

// MaxInputLogged caps how much of the offending input LogSink writes.
const MaxInputLogged = 128

// Op names the codec operation that produced an Event.
type Op string

const (
	OpDecode        Op = "decode"
	OpDecodeURLSafe Op = "decode-url-safe"
)

// Event describes a decode failure.
type Event struct {
	Op    Op
	Input string
	Err   error
}

// Sink receives decode failures. Implementations must be safe for concurrent use.
type Sink interface {
	Record(e Event)
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) Record(Event) {}

// LogSink writes events as warnings.
type LogSink struct {
	Log logrus.FieldLogger
}

// NewLogSink returns a sink logging to l.
func NewLogSink(l logrus.FieldLogger) *LogSink {
	return &LogSink{Log: l}
}

func (s *LogSink) Record(e Event) {
	input := e.Input
	if len(input) > MaxInputLogged {
		input = input[:MaxInputLogged] + "..."
	}
	s.Log.WithFields(logrus.Fields{
		"op":    string(e.Op),
		"input": input,
	}).WithError(e.Err).Warn("failed to decode data")
}
