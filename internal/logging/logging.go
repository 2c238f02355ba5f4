// Package logging builds the logrus logger used by the specsheet command.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w at the given level. Format is "text" or
// "json".
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return logger, nil
}
