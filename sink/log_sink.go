package sink

import "log/slog"

// LogSink displays each line as an info record of the logger, so the
// report lands wherever the logs go.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) Display(line string) {
	l.log.Info(line)
}
