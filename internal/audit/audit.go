package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Entry is the structured trace of one top-level calculation. Exactly one
// entry is emitted per calculation, for fiscal traceability.
type Entry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Inputs    any       `json:"inputs"`
	Outputs   any       `json:"outputs"`
	Warnings  []string  `json:"warnings,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger receives calculation entries. Delivery (synchronous, queued,
// persisted) is the collaborator's concern, not the engine's.
type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry Entry) {
	zap.L().Named("audit").Info("calculation performed",
		zap.String("timestamp", entry.Timestamp.UTC().Format(time.RFC3339)),
		zap.String("id", entry.ID),
		zap.String("action", entry.Action),
		zap.Any("inputs", entry.Inputs),
		zap.Any("outputs", entry.Outputs),
		zap.Strings("warnings", entry.Warnings),
	)
}

// MemoryLogger collects entries in memory, for tests and embedding callers
// that flush on their own schedule.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(ctx context.Context, entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *MemoryLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
