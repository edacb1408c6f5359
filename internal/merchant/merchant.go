// Package merchant implements the merchant reputation registry.
//
// Every payment handle the service has ever classified has exactly one
// record here. Records are written once: the first classification wins and
// later sightings are lookups. Corrections happen out-of-band (reseeding or
// manual SQL), never through the classifier.
package merchant

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Score bounds. 0 is confirmed fraud, 100 is a fully verified legal entity,
// everything in between is graded trust.
const (
	MinTrustScore = 0
	MaxTrustScore = 100
)

var (
	ErrMerchantNotFound = errors.New("merchant: handle not found")
	ErrMerchantExists   = errors.New("merchant: handle already registered")
	ErrInvalidScore     = errors.New("merchant: trust score out of range")
	ErrEmptyHandle      = errors.New("merchant: handle is empty")
)

// Merchant is one reputation record, keyed by payment handle.
type Merchant struct {
	Handle     string    `json:"handle"`     // canonical (lowercased) UPI/QR handle, primary key
	LegalName  string    `json:"legalName"`  // registered entity name, or a placeholder for auto-registered entries
	TrustScore int       `json:"trustScore"` // 0-100
	Category   string    `json:"category"`   // e.g. "Shopping", "Fraud", "Uncategorized"
	Verified   bool      `json:"verified"`   // manual review flag, independent of score
	CreatedAt  time.Time `json:"createdAt"`
}

// CanonicalHandle normalizes a raw handle into the storage key.
// Lowercasing is applied at both read and write so the registry never holds
// two casings of the same handle.
func CanonicalHandle(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validate checks record invariants before any write.
func (m *Merchant) Validate() error {
	if m.Handle == "" {
		return ErrEmptyHandle
	}
	if m.TrustScore < MinTrustScore || m.TrustScore > MaxTrustScore {
		return fmt.Errorf("%w: %d", ErrInvalidScore, m.TrustScore)
	}
	return nil
}
