package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, rec domain.QuoteRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockStore) Get(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRecord), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Put(ctx context.Context, rec domain.QuoteRecord, ttl time.Duration) error {
	args := m.Called(ctx, rec, ttl)
	return args.Error(0)
}

func (m *mockCache) Get(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRecord), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendQuote(ctx context.Context, rec domain.QuoteRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func testSubmission() domain.QuoteSubmission {
	return domain.QuoteSubmission{
		Business: domain.BusinessInfo{
			CompanyName: "Acme",
			Email:       "ana@acme.test",
			Phone:       "555",
			CompanySize: domain.CompanySizeSmall,
		},
		Goals: domain.MarketingGoals{
			Timeline: domain.TimelineThreeMonths,
			Urgency:  domain.UrgencyMedium,
		},
		Services: domain.ServicesSelection{
			Services: []domain.SelectedService{
				{ID: pricing.ServiceGoogleAds, Selected: true},
			},
			Platforms: []domain.SelectedPlatform{
				{ID: "google", Selected: true},
				{ID: "meta", Selected: false},
			},
			AdSpendBudget: 6000,
		},
	}
}

func newTestService(store Store, cache Cache, sender Sender) *Service {
	svc := NewService(pricing.NewCalculator(pricing.DefaultCatalog()), store, cache, sender)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreateQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("persists, caches and emails", func(t *testing.T) {
		store := new(mockStore)
		cache := new(mockCache)
		sender := new(mockSender)

		store.On("Save", mock.Anything, mock.AnythingOfType("domain.QuoteRecord")).Return(nil)
		cache.On("Put", mock.Anything, mock.AnythingOfType("domain.QuoteRecord"), Validity).Return(nil)
		sender.On("SendQuote", mock.Anything, mock.AnythingOfType("domain.QuoteRecord")).Return(nil)

		svc := newTestService(store, cache, sender)
		rec, err := svc.CreateQuote(ctx, testSubmission())

		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, rec.CreatedAt.Add(Validity), rec.ExpiresAt)
		// email 10 + company 20 + phone 15 + "5k-10k" 20 + 1 platform 5
		assert.Equal(t, 70, rec.LeadScore)
		assert.NotEmpty(t, rec.Calculation.Services)

		store.AssertExpectations(t)
		cache.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("store failure fails the quote", func(t *testing.T) {
		store := new(mockStore)
		store.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		svc := newTestService(store, nil, nil)
		_, err := svc.CreateQuote(ctx, testSubmission())

		assert.ErrorContains(t, err, "failed to save quote")
	})

	t.Run("email failure is swallowed", func(t *testing.T) {
		store := new(mockStore)
		sender := new(mockSender)
		store.On("Save", mock.Anything, mock.Anything).Return(nil)
		sender.On("SendQuote", mock.Anything, mock.Anything).Return(errors.New("throttled"))

		svc := newTestService(store, nil, sender)
		rec, err := svc.CreateQuote(ctx, testSubmission())

		require.NoError(t, err)
		assert.NotNil(t, rec)
	})

	t.Run("no email address skips the sender", func(t *testing.T) {
		store := new(mockStore)
		sender := new(mockSender)
		store.On("Save", mock.Anything, mock.Anything).Return(nil)

		sub := testSubmission()
		sub.Business.Email = ""

		svc := newTestService(store, nil, sender)
		_, err := svc.CreateQuote(ctx, sub)

		require.NoError(t, err)
		sender.AssertNotCalled(t, "SendQuote", mock.Anything, mock.Anything)
	})
}

func TestGetQuote(t *testing.T) {
	ctx := context.Background()
	cached := &domain.QuoteRecord{ID: "q-1"}

	t.Run("cache hit skips the store", func(t *testing.T) {
		store := new(mockStore)
		cache := new(mockCache)
		cache.On("Get", mock.Anything, "q-1").Return(cached, nil)

		svc := newTestService(store, cache, nil)
		rec, err := svc.GetQuote(ctx, "q-1")

		require.NoError(t, err)
		assert.Equal(t, cached, rec)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls back to the store and refreshes", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		stored := &domain.QuoteRecord{ID: "q-2", ExpiresAt: now.Add(48 * time.Hour)}

		store := new(mockStore)
		cache := new(mockCache)
		cache.On("Get", mock.Anything, "q-2").Return(nil, nil)
		store.On("Get", mock.Anything, "q-2").Return(stored, nil)
		cache.On("Put", mock.Anything, *stored, 48*time.Hour).Return(nil)

		svc := newTestService(store, cache, nil)
		rec, err := svc.GetQuote(ctx, "q-2")

		require.NoError(t, err)
		assert.Equal(t, stored, rec)
		cache.AssertExpectations(t)
	})

	t.Run("expired record is not re-cached", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		stored := &domain.QuoteRecord{ID: "q-3", ExpiresAt: now.Add(-time.Hour)}

		store := new(mockStore)
		cache := new(mockCache)
		cache.On("Get", mock.Anything, "q-3").Return(nil, nil)
		store.On("Get", mock.Anything, "q-3").Return(stored, nil)

		svc := newTestService(store, cache, nil)
		_, err := svc.GetQuote(ctx, "q-3")

		require.NoError(t, err)
		cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store error propagates", func(t *testing.T) {
		store := new(mockStore)
		store.On("Get", mock.Anything, "missing").Return(nil, errors.New("not found"))

		svc := newTestService(store, nil, nil)
		_, err := svc.GetQuote(ctx, "missing")

		assert.Error(t, err)
	})
}

func TestBudgetBracket(t *testing.T) {
	tests := []struct {
		budget   float64
		expected string
	}{
		{0, ""},
		{999, ""},
		{1000, "1k-5k"},
		{4999, "1k-5k"},
		{5000, "5k-10k"},
		{9999, "5k-10k"},
		{10000, "10k+"},
		{80000, "10k+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, budgetBracket(tt.budget), "budget %.0f", tt.budget)
	}
}
