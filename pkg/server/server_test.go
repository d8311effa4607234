package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkt-tools/quote-forge/pkg/models/api"
	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
)

type mockQuoteService struct {
	mock.Mock
}

func (m *mockQuoteService) CreateQuote(ctx context.Context, sub domain.QuoteSubmission) (*domain.QuoteRecord, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRecord), args.Error(1)
}

func (m *mockQuoteService) GetQuote(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRecord), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	quotes := new(mockQuoteService)
	quotes.On("CreateQuote", mock.Anything, mock.Anything).
		Return(&domain.QuoteRecord{ID: "q-1"}, nil)
	quotes.On("GetQuote", mock.Anything, "q-1").
		Return(&domain.QuoteRecord{ID: "q-1"}, nil)

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Quotes:  quotes,
			Catalog: pricing.DefaultCatalog(),
			Logger:  logger,
		},
	})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "health",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create quote",
			method:         http.MethodPost,
			path:           "/api/v1/quotes",
			body:           api.QuoteRequest{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "get quote",
			method:         http.MethodGet,
			path:           "/api/v1/quotes/q-1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "score lead",
			method:         http.MethodPost,
			path:           "/api/v1/leads/score",
			body:           api.LeadScoreRequest{Email: "a@b.com"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "catalog",
			method:         http.MethodGet,
			path:           "/api/v1/catalog/services",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != nil {
				payload, err := json.Marshal(tt.body)
				require.NoError(t, err)
				body = bytes.NewReader(payload)
			}

			req, err := http.NewRequest(tt.method, testServer.URL+tt.path, body)
			require.NoError(t, err)

			resp, err := testServer.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
