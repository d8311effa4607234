package api

import "time"

// QuoteRequest is the wire shape of a completed quote-wizard submission.
// The four groups mirror the wizard steps.
type QuoteRequest struct {
	Business     BusinessInfo           `json:"business_info"`
	Goals        MarketingGoals         `json:"marketing_goals"`
	Services     ServicesSelection      `json:"services_selection"`
	Requirements AdditionalRequirements `json:"additional_requirements"`
}

type BusinessInfo struct {
	CompanyName    string `json:"company_name"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Website        string `json:"website,omitempty"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"company_size"`
	MonthlyRevenue string `json:"monthly_revenue,omitempty"`
}

type Objective struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Priority string `json:"priority"`
}

type MarketingGoals struct {
	Objectives          []Objective `json:"objectives"`
	TargetAudience      string      `json:"target_audience"`
	Competitors         string      `json:"competitors,omitempty"`
	UniqueSellingPoints string      `json:"unique_selling_points"`
	Timeline            string      `json:"timeline"`
	Urgency             string      `json:"urgency"`
}

type SelectedService struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Selected  bool    `json:"selected"`
}

type SelectedPlatform struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Selected bool   `json:"selected"`
}

type ServicesSelection struct {
	Services         []SelectedService  `json:"services"`
	Platforms        []SelectedPlatform `json:"platforms"`
	MonthlyBudget    float64            `json:"monthly_budget"`
	AdSpendBudget    float64            `json:"ad_spend_budget"`
	CurrentCampaigns []string           `json:"current_campaigns,omitempty"`
}

type AdditionalRequirements struct {
	CreativeDesign    bool   `json:"creative_design"`
	LandingPages      bool   `json:"landing_pages"`
	Copywriting       bool   `json:"copywriting"`
	AnalyticsSetup    bool   `json:"analytics_setup"`
	HasExistingAssets bool   `json:"has_existing_assets"`
	SpecialRequests   string `json:"special_requests,omitempty"`
}

type QuoteServiceLine struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Frequency   string  `json:"frequency"`
}

type Discount struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage,omitempty"`
}

type QuoteCalculation struct {
	Services               []QuoteServiceLine `json:"services"`
	SetupTotal             float64            `json:"setup_total"`
	MonthlyManagement      float64            `json:"monthly_management"`
	RecommendedAdSpend     float64            `json:"recommended_ad_spend"`
	TotalMonthlyInvestment float64            `json:"total_monthly_investment"`
	EstimatedROI           float64            `json:"estimated_roi"`
	PaybackPeriod          string             `json:"payback_period"`
	ConfidenceScore        int                `json:"confidence_score"`
	Discounts              []Discount         `json:"discounts,omitempty"`
}

// QuoteResponse carries the breakdown plus the identity and validity window
// the platform attached to it.
type QuoteResponse struct {
	ID          string           `json:"id"`
	LeadScore   int              `json:"lead_score"`
	Calculation QuoteCalculation `json:"calculation"`
	CreatedAt   time.Time        `json:"created_at"`
	ExpiresAt   time.Time        `json:"expires_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
