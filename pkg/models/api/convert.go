package api

import (
	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

// ToDomainSubmission maps a wire submission onto the engine's input type.
// Category strings pass through as-is; the engine treats unknown values the
// same way it treats missing ones.
func ToDomainSubmission(req QuoteRequest) domain.QuoteSubmission {
	objectives := make([]domain.Objective, 0, len(req.Goals.Objectives))
	for _, o := range req.Goals.Objectives {
		objectives = append(objectives, domain.Objective{
			ID:       o.ID,
			Name:     o.Name,
			Icon:     o.Icon,
			Priority: domain.Priority(o.Priority),
		})
	}

	services := make([]domain.SelectedService, 0, len(req.Services.Services))
	for _, s := range req.Services.Services {
		services = append(services, domain.SelectedService{
			ID:        s.ID,
			Name:      s.Name,
			BasePrice: s.BasePrice,
			Selected:  s.Selected,
		})
	}

	platforms := make([]domain.SelectedPlatform, 0, len(req.Services.Platforms))
	for _, p := range req.Services.Platforms {
		platforms = append(platforms, domain.SelectedPlatform{
			ID:       p.ID,
			Name:     p.Name,
			Icon:     p.Icon,
			Selected: p.Selected,
		})
	}

	return domain.QuoteSubmission{
		Business: domain.BusinessInfo{
			CompanyName:    req.Business.CompanyName,
			ContactName:    req.Business.ContactName,
			Email:          req.Business.Email,
			Phone:          req.Business.Phone,
			Website:        req.Business.Website,
			Industry:       req.Business.Industry,
			CompanySize:    domain.CompanySize(req.Business.CompanySize),
			MonthlyRevenue: req.Business.MonthlyRevenue,
		},
		Goals: domain.MarketingGoals{
			Objectives:          objectives,
			TargetAudience:      req.Goals.TargetAudience,
			Competitors:         req.Goals.Competitors,
			UniqueSellingPoints: req.Goals.UniqueSellingPoints,
			Timeline:            domain.Timeline(req.Goals.Timeline),
			Urgency:             domain.Urgency(req.Goals.Urgency),
		},
		Services: domain.ServicesSelection{
			Services:         services,
			Platforms:        platforms,
			MonthlyBudget:    req.Services.MonthlyBudget,
			AdSpendBudget:    req.Services.AdSpendBudget,
			CurrentCampaigns: req.Services.CurrentCampaigns,
		},
		Requirements: domain.AdditionalRequirements{
			CreativeDesign:    req.Requirements.CreativeDesign,
			LandingPages:      req.Requirements.LandingPages,
			Copywriting:       req.Requirements.Copywriting,
			AnalyticsSetup:    req.Requirements.AnalyticsSetup,
			HasExistingAssets: req.Requirements.HasExistingAssets,
			SpecialRequests:   req.Requirements.SpecialRequests,
		},
	}
}

// FromDomainCalculation maps the engine's output onto the wire type.
func FromDomainCalculation(calc domain.QuoteCalculation) QuoteCalculation {
	lines := make([]QuoteServiceLine, 0, len(calc.Services))
	for _, line := range calc.Services {
		lines = append(lines, QuoteServiceLine{
			Name:        line.Name,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total,
			Frequency:   string(line.Frequency),
		})
	}

	var discounts []Discount
	for _, d := range calc.Discounts {
		discounts = append(discounts, Discount{
			Type:        string(d.Type),
			Description: d.Description,
			Amount:      d.Amount,
			Percentage:  d.Percentage,
		})
	}

	return QuoteCalculation{
		Services:               lines,
		SetupTotal:             calc.SetupTotal,
		MonthlyManagement:      calc.MonthlyManagement,
		RecommendedAdSpend:     calc.RecommendedAdSpend,
		TotalMonthlyInvestment: calc.TotalMonthlyInvestment,
		EstimatedROI:           calc.EstimatedROI,
		PaybackPeriod:          calc.PaybackPeriod,
		ConfidenceScore:        calc.ConfidenceScore,
		Discounts:              discounts,
	}
}

// FromDomainRecord maps a stored quote onto the response shape.
func FromDomainRecord(rec domain.QuoteRecord) QuoteResponse {
	return QuoteResponse{
		ID:          rec.ID,
		LeadScore:   rec.LeadScore,
		Calculation: FromDomainCalculation(rec.Calculation),
		CreatedAt:   rec.CreatedAt,
		ExpiresAt:   rec.ExpiresAt,
	}
}
