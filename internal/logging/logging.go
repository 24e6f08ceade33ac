package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w with the given level and format.
func New(level string, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)

	switch format {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return l, nil
}
