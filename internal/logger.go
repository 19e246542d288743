package internal

import (
	"io"
	"log/slog"

	"github.com/mama165/sdk-go/logs"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the process logger. Console output goes through the
// shared logs package; logfile output writes text records to a rotating
// file which the caller must close.
func NewLogger(config Config) (*slog.Logger, io.Closer, error) {
	if config.Output != OutputLogfile {
		return logs.GetLoggerFromLevel(config.Level()), nopCloser{}, nil
	}
	file, err := OpenRotatingFile(config.LogFile, config.LogSize, config.LogBackup)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level:       config.Level(),
		ReplaceAttr: levelNames,
	})
	return slog.New(handler), file, nil
}

// levelNames prints LevelCritical as CRITICAL instead of ERROR+4.
func levelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level >= LevelCritical {
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}
