// Package counter implements the engagement counter store: one lifetime
// aggregate per creative plus one aggregate per UTC calendar day, both
// updated with plain atomic adds. There is no deduplication anywhere in this
// package: N identical events produce a counter of exactly N.
package counter

import (
	"context"
	"time"
)

// Store is the counter store contract. Both operations are plain adds with
// no read-modify-write, so concurrent writers never lose updates.
type Store interface {
	// IncrementDaily adds delta to a field of the creative's aggregate for
	// the given date key (UTC, YYYY-MM-DD).
	IncrementDaily(ctx context.Context, adID, dateKey, field string, delta int64) error
	// IncrementLifetime adds delta to a field of the creative's all-time
	// aggregate.
	IncrementLifetime(ctx context.Context, adID, field string, delta int64) error
}

// DateKey derives the daily-aggregate key for a point in time. Days roll
// over at midnight UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
