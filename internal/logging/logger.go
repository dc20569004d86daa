// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkt-index-engine/internal/domain"
)

// Output targets besides a file path
const (
	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputDiscard = "discard"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates a logger for cfg. An unparseable level falls back to
// info. Any output other than the named targets is a file opened for
// appending; the returned closer releases it.
func NewLogger(cfg domain.LoggingConfig) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set formatter
	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	}

	var closer io.Closer = nopCloser{}
	switch strings.ToLower(cfg.Output) {
	case "", OutputStderr:
		logger.SetOutput(os.Stderr)
	case OutputStdout:
		logger.SetOutput(os.Stdout)
	case OutputDiscard:
		logger.SetOutput(io.Discard)
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(file)
		closer = file
	}

	return logger, closer, nil
}
