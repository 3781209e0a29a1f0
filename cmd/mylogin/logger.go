package main

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func parseLogLevel(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%s must be debug|info|warn|error, got %q", envLogLevel, name)
	}
}

// newLogger creates the logfmt logger with ts and caller prefixes, filtered to levelName.
func newLogger(w io.Writer, levelName string) (log.Logger, error) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	allowed, err := parseLogLevel(levelName)
	if err != nil {
		return nil, err
	}
	return level.NewFilter(logger, allowed), nil
}
