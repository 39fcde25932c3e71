package metrics

import (
	"context"
	"time"
)

// Recorder is implemented by every metrics backend.
type Recorder interface {
	RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration)
	RecordChordParse(ctx context.Context, errorKind string, cached bool, duration time.Duration)
}

// Fanout forwards every record to all of its recorders.
type Fanout []Recorder

func (f Fanout) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	for _, r := range f {
		r.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
}

func (f Fanout) RecordChordParse(ctx context.Context, errorKind string, cached bool, duration time.Duration) {
	for _, r := range f {
		r.RecordChordParse(ctx, errorKind, cached, duration)
	}
}

// Nop discards all metrics.
type Nop struct{}

func (Nop) RecordAPIRequest(context.Context, string, int, time.Duration) {}

func (Nop) RecordChordParse(context.Context, string, bool, time.Duration) {}
