package ledger

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/google/uuid"
)

// Event describes a committed state transition.
type Event interface {
	EventName() string
}

// Emitter publishes events. Processors only emit after their transaction has committed.
type Emitter interface {
	Emit(ctx context.Context, events ...Event)
}

// LogEmitter publishes events as structured log records.
type LogEmitter struct{}

func (LogEmitter) Emit(ctx context.Context, events ...Event) {
	for _, event := range events {
		logger.LogAttrs(ctx, slog.LevelInfo, "Ledger event emitted",
			slogx.String("event", event.EventName()),
			slogx.String("event_id", uuid.NewString()),
			slogx.Any("payload", event),
		)
	}
}

// Recorder keeps every emitted event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(_ context.Context, events ...Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// MultiEmitter fans events out to every emitter in order.
type MultiEmitter []Emitter

func (m MultiEmitter) Emit(ctx context.Context, events ...Event) {
	for _, e := range m {
		e.Emit(ctx, events...)
	}
}
