// Package report renders array snapshots for people and for later analysis.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xgzlucario/sortarr"
)

// Record is the element-type independent form of a snapshot.
type Record struct {
	RunID    string        `json:"run_id"`
	Label    string        `json:"label"`
	Policy   string        `json:"policy"`
	From     int           `json:"from"`
	Capacity int           `json:"capacity"`
	Count    int           `json:"count"`
	Resizes  int           `json:"resizes"`
	Elapsed  time.Duration `json:"elapsed"`
	Memory   int           `json:"memory"`
	Samples  []string      `json:"samples"`
}

// NewRunID
func NewRunID() string {
	return uuid.NewString()
}

// FromSnapshot converts a snapshot, formatting samples with fmt.
func FromSnapshot[T any](runID, label string, s sortarr.Snapshot[T]) Record {
	samples := make([]string, len(s.Samples))
	for i, v := range s.Samples {
		samples[i] = format(v)
	}

	return Record{
		RunID:    runID,
		Label:    label,
		Policy:   s.Policy.String(),
		From:     s.From,
		Capacity: s.Capacity,
		Count:    s.Count,
		Resizes:  s.Resizes,
		Elapsed:  s.Elapsed,
		Memory:   s.MemoryBytes,
		Samples:  samples,
	}
}

func format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(v)
}

// Sink consumes records.
type Sink interface {
	Emit(Record) error
}

// Observer fans array snapshots out to sinks. Sink errors never reach the
// array, they are logged and collected for Err.
type Observer[T any] struct {
	runID  string
	label  string
	sinks  []Sink
	logger *slog.Logger
	err    error
}

// NewObserver
func NewObserver[T any](runID, label string, logger *slog.Logger, sinks ...Sink) *Observer[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer[T]{
		runID:  runID,
		label:  label,
		sinks:  sinks,
		logger: logger,
	}
}

// Observe
func (o *Observer[T]) Observe(s sortarr.Snapshot[T]) {
	o.Emit(FromSnapshot(o.runID, o.label, s))
}

// Emit sends a record to every sink.
func (o *Observer[T]) Emit(r Record) {
	for _, sink := range o.sinks {
		if err := sink.Emit(r); err != nil {
			o.logger.Error("report: emit snapshot", "label", o.label, "capacity", r.Capacity, "error", err)
			o.err = errors.Join(o.err, err)
		}
	}
}

// Err returns the errors returned by the sinks so far.
func (o *Observer[T]) Err() error {
	return o.err
}
