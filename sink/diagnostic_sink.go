package sink

import (
	"context"
	"hero-lab/contract"
	"log/slog"
)

// LogSink writes failures on the process error logger.
// Shipping them to a remote collector is not supported yet.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Report(ctx context.Context, failure contract.Failure) {
	s.log.ErrorContext(ctx, "Operation failed",
		"operation", failure.Operation,
		"request_id", failure.RequestID,
		"at", failure.At,
		"error", failure.Err,
	)
}
