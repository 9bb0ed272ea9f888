package ports

import (
	"context"
	"time"

	"lessoncard/domain/card"
)

// RecordCache memoizes the most recent load result for a bounded time.
// Get serves the cached batch while fresh and fetches through otherwise.
// Invalidate drops the cached batch so the next Get fetches fresh.
type RecordCache interface {
	Get(ctx context.Context) ([]card.Record, error)
	Invalidate()
	FetchedAt() time.Time
}
