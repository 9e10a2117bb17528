package report

import (
	"context"
	"log/slog"
)

// LogSink writes records to a structured logger.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink
func NewLogSink(logger *slog.Logger, level slog.Level) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger, level: level}
}

// Emit
func (s *LogSink) Emit(r Record) error {
	s.logger.LogAttrs(context.Background(), s.level, "resize",
		slog.String("run_id", r.RunID),
		slog.String("label", r.Label),
		slog.Int("from", r.From),
		slog.Int("capacity", r.Capacity),
		slog.Int("count", r.Count),
		slog.Int("resizes", r.Resizes),
		slog.Duration("elapsed", r.Elapsed),
		slog.Int("memory", r.Memory),
		slog.Any("samples", r.Samples),
	)
	return nil
}
