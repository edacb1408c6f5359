package scanner

import (
	"context"
	"errors"

	"github.com/smartshield/smartshield/internal/logging"
	"github.com/smartshield/smartshield/internal/merchant"
	"github.com/smartshield/smartshield/internal/metrics"
)

// Placeholder identities for auto-registered records. The category/name pair
// preserves how a record came to exist: a keyword hit is filed as fraud, a
// clean unknown is filed as uncategorized tracking.
const (
	fraudCategory   = "Fraud"
	fraudLegalName  = "Suspicious Unknown ID"
	unknownCategory = "Uncategorized"
	unknownName     = "Unknown Merchant"
)

// Registrar commits first-sighting outcomes to the registry.
type Registrar struct {
	store merchant.Store
}

// NewRegistrar creates a registrar writing to the given store.
func NewRegistrar(store merchant.Store) *Registrar {
	return &Registrar{store: store}
}

// Register persists the classification of a previously unseen handle.
// A concurrent first-sighting loses the insert race here; that is not an
// error — the stored record is authoritative and the verdict already
// returned to the caller is identical, so the loss is silently discarded.
// Returns true when this call created the record.
func (r *Registrar) Register(ctx context.Context, handle string, res *Result) (bool, error) {
	m := &merchant.Merchant{
		Handle:     handle,
		TrustScore: res.Score,
	}
	if res.Status == VerdictFraud {
		m.LegalName = fraudLegalName
		m.Category = fraudCategory
	} else {
		m.LegalName = unknownName
		m.Category = unknownCategory
	}

	err := r.store.Create(ctx, m)
	if errors.Is(err, merchant.ErrMerchantExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	metrics.MerchantsRegisteredTotal.WithLabelValues(m.Category).Inc()
	logging.L(ctx).Info("merchant auto-registered",
		"handle", handle,
		"category", m.Category,
		"score", m.TrustScore,
	)
	return true, nil
}
