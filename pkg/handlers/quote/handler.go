// Package quote exposes the quote engine over HTTP.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mkt-tools/quote-forge/pkg/models/api"
	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/mkt-tools/quote-forge/pkg/services/lead"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
	quoteservice "github.com/mkt-tools/quote-forge/pkg/services/quote"
)

// Service is the slice of the quote service the handler consumes.
type Service interface {
	CreateQuote(ctx context.Context, sub domain.QuoteSubmission) (*domain.QuoteRecord, error)
	GetQuote(ctx context.Context, id string) (*domain.QuoteRecord, error)
}

type Handler struct {
	quotes  Service
	catalog pricing.Catalog
}

func NewHandler(quotes Service, catalog pricing.Catalog) *Handler {
	return &Handler{
		quotes:  quotes,
		catalog: catalog,
	}
}

// CreateQuote handles POST /api/v1/quotes. The body is a wizard submission;
// semantic validation happened upstream, so only decode failures are
// rejected here.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote submission")
		return
	}

	rec, err := h.quotes.CreateQuote(ctx, api.ToDomainSubmission(req))
	if err != nil {
		logger.Error().Err(err).Msg("failed to create quote")
		writeError(w, http.StatusInternalServerError, "failed to create quote")
		return
	}

	writeJSON(w, http.StatusCreated, api.FromDomainRecord(*rec))
}

// GetQuote handles GET /api/v1/quotes/{id}.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	rec, err := h.quotes.GetQuote(ctx, id)
	if errors.Is(err, quoteservice.ErrNotFound) {
		writeError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("quote_id", id).Msg("failed to load quote")
		writeError(w, http.StatusInternalServerError, "failed to load quote")
		return
	}

	writeJSON(w, http.StatusOK, api.FromDomainRecord(*rec))
}

// ScoreLead handles POST /api/v1/leads/score.
func (h *Handler) ScoreLead(w http.ResponseWriter, r *http.Request) {
	var req api.LeadScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead payload")
		return
	}

	score := lead.Score(lead.Signals{
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
		Budget:    req.Budget,
		Platforms: req.Platforms,
	})

	writeJSON(w, http.StatusOK, api.LeadScoreResponse{Score: score})
}

// GetCatalog handles GET /api/v1/catalog/services. The wizard uses it to
// render the service and add-on picker.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	services := make([]api.CatalogService, 0, len(h.catalog.Services))
	for id, entry := range h.catalog.Services {
		services = append(services, api.CatalogService{
			ID:          id,
			Name:        entry.Name,
			Description: entry.Description,
			BasePrice:   entry.BasePrice,
			SetupFee:    entry.SetupFee,
		})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })

	addOns := make([]api.CatalogAddOn, 0, len(h.catalog.AddOns))
	for id, entry := range h.catalog.AddOns {
		addOns = append(addOns, api.CatalogAddOn{
			ID:           id,
			Name:         entry.Name,
			Description:  entry.Description,
			MonthlyPrice: entry.MonthlyPrice,
			SetupPrice:   entry.SetupPrice,
			Frequency:    string(entry.Frequency),
		})
	}
	sort.Slice(addOns, func(i, j int) bool { return addOns[i].ID < addOns[j].ID })

	writeJSON(w, http.StatusOK, api.CatalogResponse{Services: services, AddOns: addOns})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg})
}
