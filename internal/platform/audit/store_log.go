package audit

import (
	"context"
	"log/slog"
)

// DefaultRecentEvents is how many events a LogStore retains for ListAll.
const DefaultRecentEvents = 1000

// LogStore writes events to a structured logger and keeps the most recent
// DefaultRecentEvents in memory for ListAll.
type LogStore struct {
	logger *slog.Logger
	recent *InMemoryStore
}

func NewLogStore(logger *slog.Logger) *LogStore {
	return &LogStore{logger: logger, recent: NewBoundedInMemoryStore(DefaultRecentEvents)}
}

func (s *LogStore) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "audit event",
		"event_id", event.ID.String(),
		"category", string(event.Category),
		"action", event.Action,
		"decision", event.Decision,
		"reason", event.Reason,
		"subject_id_hash", event.SubjectIDHash,
		"age", event.Age,
		"income_band", event.IncomeBand,
		"timestamp", event.Timestamp,
	)
	return s.recent.Append(ctx, event)
}

func (s *LogStore) ListAll(ctx context.Context) ([]Event, error) {
	return s.recent.ListAll(ctx)
}
