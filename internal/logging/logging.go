package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to out. format is "text" or "json".
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	lg := logrus.New()
	lg.Out = out
	lg.Level = lvl
	switch format {
	case "", "text":
		lg.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	case "json":
		lg.Formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return lg, nil
}
