package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartshield/smartshield/internal/logging"
	"github.com/smartshield/smartshield/internal/merchant"
	"github.com/smartshield/smartshield/internal/metrics"
	"github.com/smartshield/smartshield/internal/traces"
)

// Default policy constants. The threshold is policy, not derived: graylist
// records above it are SAFE, at or below it FRAUD.
const (
	DefaultSafeThreshold = 40
	DefaultUnknownScore  = 50
)

// Service classifies handles against the registry and the keyword heuristic.
type Service struct {
	store         merchant.Store
	registrar     *Registrar
	events        EventEmitter
	safeThreshold int
	unknownScore  int
}

// NewService creates a classifier backed by the given registry.
func NewService(store merchant.Store) *Service {
	return &Service{
		store:         store,
		registrar:     NewRegistrar(store),
		safeThreshold: DefaultSafeThreshold,
		unknownScore:  DefaultUnknownScore,
	}
}

// WithSafeThreshold overrides the graylist verdict threshold.
func (s *Service) WithSafeThreshold(t int) *Service {
	s.safeThreshold = t
	return s
}

// WithUnknownScore overrides the score assigned to clean first sightings.
func (s *Service) WithUnknownScore(score int) *Service {
	s.unknownScore = score
	return s
}

// WithEvents attaches a live-feed emitter.
func (s *Service) WithEvents(events EventEmitter) *Service {
	s.events = events
	return s
}

// Classify produces a verdict for a raw handle string.
//
// The handle is canonicalized once and that key is used for both the lookup
// and any registration, so the registry never diverges by casing. Input is
// opaque: empty strings, multi-KB payloads and quote/SQL metacharacters all
// classify normally. For well-formed input the only failure mode is the
// registry being unreachable.
func (s *Service) Classify(ctx context.Context, rawText string) (*Result, error) {
	ctx, span := traces.StartSpan(ctx, "scanner.Classify")
	defer span.End()

	start := time.Now()
	handle := merchant.CanonicalHandle(rawText)
	span.SetAttributes(traces.Handle(handle))

	res, err := s.classify(ctx, handle)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(traces.Verdict(string(res.Status)), traces.Score(res.Score))
	metrics.ScansTotal.WithLabelValues(string(res.Status), res.Source).Inc()
	metrics.ScanDuration.Observe(time.Since(start).Seconds())

	if s.events != nil {
		s.events.ScanCompleted(ctx, handle, res)
	}
	return res, nil
}

func (s *Service) classify(ctx context.Context, handle string) (*Result, error) {
	// Stage 1: registry lookup (the "bank verification" path)
	m, err := s.store.Get(ctx, handle)
	switch {
	case err == nil:
		return s.fromRecord(m), nil
	case errors.Is(err, merchant.ErrMerchantNotFound):
		// fall through to the heuristic
	default:
		return nil, fmt.Errorf("registry lookup: %w", err)
	}

	// Stage 2: keyword heuristic for first sightings
	res := s.fromHeuristic(handle)

	// An empty scan still gets a verdict, but there is nothing to remember:
	// the registry keys on the handle and an empty key is not a merchant.
	if handle == "" {
		return res, nil
	}

	// The miss outcome is always persisted; this is the self-learning step.
	// Losing the insert race to a concurrent scanner is fine, but a real
	// storage failure is only logged: the verdict stands either way.
	if created, err := s.registrar.Register(ctx, handle, res); err != nil {
		logging.L(ctx).Error("failed to register first sighting",
			"handle", handle, "error", err)
	} else if created && s.events != nil {
		category := unknownCategory
		if res.Status == VerdictFraud {
			category = fraudCategory
		}
		s.events.MerchantRegistered(ctx, handle, category)
	}

	return res, nil
}

// fromRecord maps a stored reputation record to a verdict.
func (s *Service) fromRecord(m *merchant.Merchant) *Result {
	switch {
	case m.TrustScore == merchant.MaxTrustScore:
		return &Result{
			Status:  VerdictSafe,
			Score:   m.TrustScore,
			Message: fmt.Sprintf("SAFE - Verified Merchant: %s", m.LegalName),
			Source:  SourceRegistry,
		}
	case m.TrustScore == merchant.MinTrustScore:
		return &Result{
			Status:  VerdictFraud,
			Score:   m.TrustScore,
			Message: fmt.Sprintf("DANGER - Known Fraud: %s", m.LegalName),
			Source:  SourceRegistry,
		}
	default:
		status := VerdictFraud
		if m.TrustScore > s.safeThreshold {
			status = VerdictSafe
		}
		return &Result{
			Status:  status,
			Score:   m.TrustScore,
			Message: fmt.Sprintf("Merchant: %s (Score: %d)", m.LegalName, m.TrustScore),
			Source:  SourceRegistry,
		}
	}
}

// fromHeuristic classifies a handle the registry has never seen.
func (s *Service) fromHeuristic(handle string) *Result {
	if kw := matchKeyword(handle); kw != "" {
		metrics.HeuristicMatchesTotal.WithLabelValues(kw).Inc()
		return &Result{
			Status:  VerdictFraud,
			Score:   merchant.MinTrustScore,
			Message: fmt.Sprintf("DANGER - Suspicious keyword '%s' found.", kw),
			Source:  SourceHeuristic,
		}
	}
	return &Result{
		Status:  VerdictSafe,
		Score:   s.unknownScore,
		Message: "SAFE - First time seen. Added to tracking.",
		Source:  SourceUnknown,
	}
}
