// Package creative provides read access to authored creative records. The
// authoring system owns writes; the delivery core only lists and fetches.
package creative

import (
	"context"
	"errors"

	"github.com/ignite/adserver/internal/domain"
)

// ErrNotFound is returned when a creative record does not exist.
var ErrNotFound = errors.New("creative not found")

// Store is the creative record store contract.
type Store interface {
	// ListByPublisher returns every creative owned by the publisher, in
	// store order. No ordering is guaranteed across calls.
	ListByPublisher(ctx context.Context, publisherID string) ([]domain.CreativeRecord, error)
	// GetByID returns one creative or ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.CreativeRecord, error)
}
