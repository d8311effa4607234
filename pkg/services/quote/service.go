// Package quote orchestrates the quote lifecycle: price calculation,
// persistence, caching and the confirmation email.
package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/mkt-tools/quote-forge/pkg/services/lead"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
)

// Validity is how long a generated quote honors its prices.
const Validity = 30 * 24 * time.Hour

// ErrNotFound is returned when no quote exists for the requested id.
// Stores return it so transport layers can map it to a 404.
var ErrNotFound = errors.New("quote not found")

// Store persists quote records.
type Store interface {
	Save(ctx context.Context, rec domain.QuoteRecord) error
	Get(ctx context.Context, id string) (*domain.QuoteRecord, error)
}

// Cache keeps hot quotes close to the read path. A miss is not an error.
type Cache interface {
	Put(ctx context.Context, rec domain.QuoteRecord, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.QuoteRecord, error)
}

// Sender delivers the quote breakdown to the requester.
type Sender interface {
	SendQuote(ctx context.Context, rec domain.QuoteRecord) error
}

type Service struct {
	calculator *pricing.Calculator
	store      Store
	cache      Cache
	sender     Sender
	now        func() time.Time
}

// NewService wires the quote pipeline. Cache and sender may be nil; the
// store is required.
func NewService(calculator *pricing.Calculator, store Store, cache Cache, sender Sender) *Service {
	return &Service{
		calculator: calculator,
		store:      store,
		cache:      cache,
		sender:     sender,
		now:        time.Now,
	}
}

// CreateQuote runs the engine over a validated submission, stamps the
// record with an id and a validity window, persists it, and fires the
// confirmation email. Email delivery is best-effort: a failure is logged
// and never fails the quote.
func (s *Service) CreateQuote(ctx context.Context, sub domain.QuoteSubmission) (*domain.QuoteRecord, error) {
	logger := zerolog.Ctx(ctx)

	now := s.now().UTC()
	rec := domain.QuoteRecord{
		ID:          uuid.NewString(),
		Submission:  sub,
		Calculation: s.calculator.Calculate(sub),
		LeadScore:   lead.Score(leadSignals(sub)),
		CreatedAt:   now,
		ExpiresAt:   now.Add(Validity),
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, rec, Validity); err != nil {
			logger.Warn().Err(err).Str("quote_id", rec.ID).Msg("failed to cache quote")
		}
	}

	if s.sender != nil && sub.Business.Email != "" {
		if err := s.sender.SendQuote(ctx, rec); err != nil {
			logger.Error().Err(err).Str("quote_id", rec.ID).Msg("failed to email quote")
		}
	}

	return &rec, nil
}

// GetQuote serves from the cache when possible, falling back to the store.
func (s *Service) GetQuote(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		rec, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Warn().Err(err).Str("quote_id", id).Msg("quote cache lookup failed")
		} else if rec != nil {
			return rec, nil
		}
	}

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		ttl := rec.ExpiresAt.Sub(s.now().UTC())
		if ttl > 0 {
			if err := s.cache.Put(ctx, *rec, ttl); err != nil {
				logger.Warn().Err(err).Str("quote_id", id).Msg("failed to refresh quote cache")
			}
		}
	}

	return rec, nil
}

// leadSignals projects the submission fields that feed lead scoring.
// The numeric ad-spend budget is folded into the bracket labels the
// scoring table knows.
func leadSignals(sub domain.QuoteSubmission) lead.Signals {
	var platforms []string
	for _, p := range sub.Services.Platforms {
		if p.Selected {
			platforms = append(platforms, p.ID)
		}
	}

	return lead.Signals{
		Email:     sub.Business.Email,
		Company:   sub.Business.CompanyName,
		Phone:     sub.Business.Phone,
		Budget:    budgetBracket(sub.Services.AdSpendBudget),
		Platforms: platforms,
	}
}

func budgetBracket(budget float64) string {
	switch {
	case budget >= 10000:
		return "10k+"
	case budget >= 5000:
		return "5k-10k"
	case budget >= 1000:
		return "1k-5k"
	default:
		return ""
	}
}
