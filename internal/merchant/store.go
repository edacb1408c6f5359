package merchant

import "context"

// Store defines the persistence interface for reputation records.
type Store interface {
	// Create inserts a record if the handle is absent. Returns
	// ErrMerchantExists when the handle is already registered; the insert
	// must be atomic at the storage layer (no check-then-act in callers).
	Create(ctx context.Context, m *Merchant) error

	// Get returns the record for a canonical handle, or ErrMerchantNotFound.
	Get(ctx context.Context, handle string) (*Merchant, error)

	// ListRecent returns up to limit records, newest-first by insertion order.
	ListRecent(ctx context.Context, limit int) ([]*Merchant, error)

	// Count returns the registry size.
	Count(ctx context.Context) (int64, error)
}

// DefaultListLimit bounds ListRecent when callers pass 0.
const DefaultListLimit = 50
