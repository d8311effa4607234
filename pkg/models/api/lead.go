package api

// LeadScoreRequest carries the partial contact record scored by the lead
// qualification endpoint.
type LeadScoreRequest struct {
	Email     string   `json:"email,omitempty"`
	Company   string   `json:"company,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Budget    string   `json:"budget,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}

type LeadScoreResponse struct {
	Score int `json:"score"`
}

// CatalogService is a catalog entry as shown to the public quote wizard.
type CatalogService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	SetupFee    float64 `json:"setup_fee"`
}

type CatalogAddOn struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MonthlyPrice float64 `json:"monthly_price"`
	SetupPrice   float64 `json:"setup_price"`
	Frequency    string  `json:"frequency"`
}

type CatalogResponse struct {
	Services []CatalogService `json:"services"`
	AddOns   []CatalogAddOn   `json:"addons"`
}
