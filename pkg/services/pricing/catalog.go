package pricing

import (
	"fmt"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/spf13/viper"
)

// ServicePrice is the catalog entry for one offerable service.
type ServicePrice struct {
	Name        string  `mapstructure:"name"`
	Description string  `mapstructure:"description"`
	BasePrice   float64 `mapstructure:"base_price"`
	SetupFee    float64 `mapstructure:"setup_fee"`
}

// AddOnPrice is the catalog entry for one add-on. Monthly add-ons bill
// MonthlyPrice every month; one-time add-ons bill SetupPrice once.
type AddOnPrice struct {
	Name         string           `mapstructure:"name"`
	Description  string           `mapstructure:"description"`
	MonthlyPrice float64          `mapstructure:"monthly_price"`
	SetupPrice   float64          `mapstructure:"setup_price"`
	Frequency    domain.Frequency `mapstructure:"frequency"`
}

// RateTier maps an ad-spend threshold to a management-fee percentage.
// Tiers are ordered by descending threshold; the first tier whose
// threshold the budget reaches wins.
type RateTier struct {
	Threshold float64 `mapstructure:"threshold"`
	Rate      float64 `mapstructure:"rate"`
}

// Catalog is the static pricing configuration. It is loaded once at process
// start and never mutated afterwards, so it is safe to share between
// concurrent calculations.
type Catalog struct {
	Services             map[string]ServicePrice        `mapstructure:"services"`
	AddOns               map[string]AddOnPrice          `mapstructure:"addons"`
	ManagementTiers      []RateTier                     `mapstructure:"management_tiers"`
	MinimumManagementFee float64                        `mapstructure:"minimum_management_fee"`
	IndustryROI          map[string]float64             `mapstructure:"industry_roi"`
	DefaultROI           float64                        `mapstructure:"default_roi"`
	SizeMultipliers      map[domain.CompanySize]float64 `mapstructure:"size_multipliers"`
	UrgencyMultipliers   map[domain.Urgency]float64     `mapstructure:"urgency_multipliers"`
	BaseAdSpend          map[domain.CompanySize]float64 `mapstructure:"base_ad_spend"`
}

// Known service and add-on identifiers.
const (
	ServiceGoogleAds      = "google-ads"
	ServiceMetaAds        = "meta-ads"
	ServiceSEO            = "seo"
	ServiceSocialMedia    = "social-media"
	ServiceEmailMarketing = "email-marketing"

	AddOnCreativeDesign = "creative-design"
	AddOnLandingPages   = "landing-pages"
	AddOnCopywriting    = "copywriting"
	AddOnAnalyticsSetup = "analytics-setup"
)

// DefaultCatalog returns the compiled-in price list.
func DefaultCatalog() Catalog {
	return Catalog{
		Services: map[string]ServicePrice{
			ServiceGoogleAds: {
				Name:        "Google Ads Management",
				Description: "Search, display and shopping campaigns on Google",
				BasePrice:   997,
				SetupFee:    500,
			},
			ServiceMetaAds: {
				Name:        "Meta Ads Management",
				Description: "Paid campaigns on Facebook and Instagram",
				BasePrice:   897,
				SetupFee:    450,
			},
			ServiceSEO: {
				Name:        "SEO & Content",
				Description: "Organic positioning, on-page and content strategy",
				BasePrice:   1297,
				SetupFee:    800,
			},
			ServiceSocialMedia: {
				Name:        "Social Media Management",
				Description: "Organic community management and publishing",
				BasePrice:   797,
				SetupFee:    300,
			},
			ServiceEmailMarketing: {
				Name:        "Email Marketing",
				Description: "Automated flows, newsletters and list nurturing",
				BasePrice:   597,
				SetupFee:    250,
			},
		},
		AddOns: map[string]AddOnPrice{
			AddOnCreativeDesign: {
				Name:         "Creative Design",
				Description:  "Ad creatives and brand assets",
				MonthlyPrice: 497,
				SetupPrice:   350,
				Frequency:    domain.FrequencyMonthly,
			},
			AddOnLandingPages: {
				Name:         "Landing Pages",
				Description:  "Conversion-focused landing page production",
				MonthlyPrice: 297,
				SetupPrice:   400,
				Frequency:    domain.FrequencyMonthly,
			},
			AddOnCopywriting: {
				Name:         "Copywriting",
				Description:  "Ad copy and persuasive content",
				MonthlyPrice: 397,
				SetupPrice:   250,
				Frequency:    domain.FrequencyMonthly,
			},
			AddOnAnalyticsSetup: {
				Name:         "Analytics Setup",
				Description:  "Tracking, conversion and dashboard configuration",
				MonthlyPrice: 0,
				SetupPrice:   750,
				Frequency:    domain.FrequencyOneTime,
			},
		},
		ManagementTiers: []RateTier{
			{Threshold: 50000, Rate: 0.10},
			{Threshold: 25000, Rate: 0.12},
			{Threshold: 10000, Rate: 0.15},
			{Threshold: 5000, Rate: 0.18},
			{Threshold: 0, Rate: 0.20},
		},
		MinimumManagementFee: 997,
		IndustryROI: map[string]float64{
			"ecommerce":   3.5,
			"saas":        4.0,
			"healthcare":  2.8,
			"real-estate": 3.2,
			"education":   2.6,
			"finance":     3.0,
			"restaurants": 2.4,
			"fitness":     2.7,
			"legal":       3.1,
			"automotive":  2.9,
		},
		DefaultROI: 2.5,
		SizeMultipliers: map[domain.CompanySize]float64{
			domain.CompanySizeStartup:    0.9,
			domain.CompanySizeSmall:      1.0,
			domain.CompanySizeMedium:     1.15,
			domain.CompanySizeEnterprise: 1.35,
		},
		UrgencyMultipliers: map[domain.Urgency]float64{
			domain.UrgencyLow:      0.95,
			domain.UrgencyMedium:   1.0,
			domain.UrgencyHigh:     1.1,
			domain.UrgencyCritical: 1.25,
		},
		BaseAdSpend: map[domain.CompanySize]float64{
			domain.CompanySizeStartup:    3000,
			domain.CompanySizeSmall:      5000,
			domain.CompanySizeMedium:     10000,
			domain.CompanySizeEnterprise: 25000,
		},
	}
}

// LoadCatalog reads a catalog override file and merges it over the default
// catalog. Only keys present in the file replace the defaults.
func LoadCatalog(path string) (Catalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := v.Unmarshal(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return catalog, nil
}

// sizeMultiplier falls back to 1.0 for unknown sizes so a partial override
// file cannot zero out prices.
func (c Catalog) sizeMultiplier(size domain.CompanySize) float64 {
	if m, ok := c.SizeMultipliers[size]; ok {
		return m
	}
	return 1.0
}

func (c Catalog) urgencyMultiplier(urgency domain.Urgency) float64 {
	if m, ok := c.UrgencyMultipliers[urgency]; ok {
		return m
	}
	return 1.0
}

// managementRate picks the fee percentage for an ad-spend budget.
func (c Catalog) managementRate(adSpend float64) float64 {
	for _, tier := range c.ManagementTiers {
		if adSpend >= tier.Threshold {
			return tier.Rate
		}
	}
	if len(c.ManagementTiers) == 0 {
		return 0
	}
	return c.ManagementTiers[len(c.ManagementTiers)-1].Rate
}

// industryMultiplier resolves the ROI baseline for an open-ended industry
// string, defaulting for anything the table does not know.
func (c Catalog) industryMultiplier(industry string) float64 {
	if m, ok := c.IndustryROI[normalizeIndustry(industry)]; ok {
		return m
	}
	return c.DefaultROI
}
