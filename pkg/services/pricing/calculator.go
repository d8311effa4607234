package pricing

import (
	"math"
	"strings"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

const (
	bundleDiscountRate     = 0.10
	volumeDiscountRate     = 0.05
	commitmentDiscountRate = 0.50

	bundleServiceCount  = 3
	volumeAdSpendFloor  = 10000
	aggressiveGoalBoost = 1.5

	baseConfidence = 60
	maxConfidence  = 95
)

// aggressiveObjectives are the objective ids that, with high priority,
// justify a larger recommended ad spend.
var aggressiveObjectives = map[string]bool{
	"sales":  true,
	"leads":  true,
	"growth": true,
}

// Calculator turns a quote submission into a full cost and ROI breakdown.
// It performs no I/O and keeps no mutable state, so a single instance can
// serve any number of concurrent callers.
type Calculator struct {
	catalog Catalog
}

func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Calculate is deterministic: the same submission always yields the same
// calculation. It never fails; unknown service ids are skipped and missing
// optional fields contribute nothing.
func (c *Calculator) Calculate(sub domain.QuoteSubmission) domain.QuoteCalculation {
	var (
		lines        []domain.QuoteServiceLine
		monthlyTotal float64
		setupTotal   float64
	)

	sizeMult := c.catalog.sizeMultiplier(sub.Business.CompanySize)
	urgencyMult := c.catalog.urgencyMultiplier(sub.Goals.Urgency)

	for _, selected := range sub.Services.Services {
		if !selected.Selected {
			continue
		}
		entry, known := c.catalog.Services[selected.ID]
		if !known {
			continue
		}
		// Setup fees are fixed; only the recurring price scales with
		// company size and urgency.
		price := math.Round(entry.BasePrice * sizeMult * urgencyMult)
		lines = append(lines, domain.QuoteServiceLine{
			Name:        entry.Name,
			Description: entry.Description,
			Quantity:    1,
			UnitPrice:   price,
			Total:       price,
			Frequency:   domain.FrequencyMonthly,
		})
		monthlyTotal += price
		setupTotal += entry.SetupFee
	}

	managementFee := c.managementFee(sub.Services.AdSpendBudget)
	if managementFee > 0 {
		lines = append(lines, domain.QuoteServiceLine{
			Name:        "Ad Spend Management Fee",
			Description: "Tiered management fee over the advertising budget",
			Quantity:    1,
			UnitPrice:   managementFee,
			Total:       managementFee,
			Frequency:   domain.FrequencyMonthly,
		})
		monthlyTotal += managementFee
	}

	addOnLines, addOnMonthly, addOnSetup := c.addOnLines(sub.Requirements)
	lines = append(lines, addOnLines...)
	monthlyTotal += addOnMonthly
	setupTotal += addOnSetup

	discounts := c.discounts(sub, monthlyTotal, setupTotal)
	discountAmount := 0.0
	for _, d := range discounts {
		discountAmount += d.Amount
	}

	monthlyManagement := math.Max(monthlyTotal-discountAmount, c.catalog.MinimumManagementFee)

	adSpend := c.recommendedAdSpend(sub)
	investment := monthlyManagement + adSpend

	roi := c.estimatedROI(sub, investment)

	return domain.QuoteCalculation{
		Services:               lines,
		SetupTotal:             setupTotal,
		MonthlyManagement:      monthlyManagement,
		RecommendedAdSpend:     adSpend,
		TotalMonthlyInvestment: investment,
		EstimatedROI:           roi,
		PaybackPeriod:          paybackLabel(investment, roi),
		ConfidenceScore:        confidenceScore(sub),
		Discounts:              discounts,
	}
}

// managementFee applies the tiered rate to the ad-spend budget, floored at
// the global minimum fee.
func (c *Calculator) managementFee(adSpendBudget float64) float64 {
	fee := adSpendBudget * c.catalog.managementRate(adSpendBudget)
	return math.Max(fee, c.catalog.MinimumManagementFee)
}

func (c *Calculator) addOnLines(
	req domain.AdditionalRequirements,
) (lines []domain.QuoteServiceLine, monthly, setup float64) {
	flags := []struct {
		id       string
		selected bool
	}{
		{AddOnCreativeDesign, req.CreativeDesign},
		{AddOnLandingPages, req.LandingPages},
		{AddOnCopywriting, req.Copywriting},
		{AddOnAnalyticsSetup, req.AnalyticsSetup},
	}

	for _, flag := range flags {
		if !flag.selected {
			continue
		}
		entry, known := c.catalog.AddOns[flag.id]
		if !known {
			continue
		}
		price := entry.MonthlyPrice
		if entry.Frequency == domain.FrequencyOneTime {
			price = entry.SetupPrice
			setup += price
		} else {
			monthly += price
		}
		lines = append(lines, domain.QuoteServiceLine{
			Name:        entry.Name,
			Description: entry.Description,
			Quantity:    1,
			UnitPrice:   price,
			Total:       price,
			Frequency:   entry.Frequency,
		})
	}
	return lines, monthly, setup
}

// discounts computes every applicable discount against the pre-discount
// totals. Bundle and volume both apply to the original monthly fee, not to
// each other's result.
func (c *Calculator) discounts(
	sub domain.QuoteSubmission,
	monthlyTotal, setupTotal float64,
) []domain.Discount {
	var discounts []domain.Discount

	if sub.Services.SelectedServiceCount() >= bundleServiceCount {
		discounts = append(discounts, domain.Discount{
			Type:        domain.DiscountBundle,
			Description: "Descuento por paquete de servicios",
			Amount:      monthlyTotal * bundleDiscountRate,
			Percentage:  bundleDiscountRate * 100,
		})
	}

	if sub.Services.AdSpendBudget >= volumeAdSpendFloor {
		discounts = append(discounts, domain.Discount{
			Type:        domain.DiscountVolume,
			Description: "Descuento por volumen de inversión publicitaria",
			Amount:      monthlyTotal * volumeDiscountRate,
			Percentage:  volumeDiscountRate * 100,
		})
	}

	// Only an exact six-month commitment qualifies; longer or flexible
	// timelines do not.
	if sub.Goals.Timeline == domain.TimelineSixMonths {
		discounts = append(discounts, domain.Discount{
			Type:        domain.DiscountCommitment,
			Description: "Descuento por compromiso de 6 meses",
			Amount:      setupTotal * commitmentDiscountRate,
			Percentage:  commitmentDiscountRate * 100,
		})
	}

	return discounts
}

// recommendedAdSpend is a sales-oriented figure, independent of the budget
// the client typed in. When the client did supply a budget the two are
// blended as their arithmetic mean.
func (c *Calculator) recommendedAdSpend(sub domain.QuoteSubmission) float64 {
	recommended := c.catalog.BaseAdSpend[sub.Business.CompanySize]

	if hasAggressiveGoals(sub.Goals.Objectives) {
		recommended *= aggressiveGoalBoost
	}

	switch sub.Goals.Urgency {
	case domain.UrgencyCritical:
		recommended *= 1.3
	case domain.UrgencyHigh:
		recommended *= 1.15
	}

	if sub.Services.AdSpendBudget > 0 {
		recommended = (recommended + sub.Services.AdSpendBudget) / 2
	}

	return math.Round(recommended/100) * 100
}

func hasAggressiveGoals(objectives []domain.Objective) bool {
	for _, obj := range objectives {
		if obj.Priority == domain.PriorityHigh && aggressiveObjectives[obj.ID] {
			return true
		}
	}
	return false
}

func (c *Calculator) estimatedROI(sub domain.QuoteSubmission, investment float64) float64 {
	multiplier := c.catalog.industryMultiplier(sub.Business.Industry)
	multiplier *= 1 + 0.1*float64(sub.Services.SelectedServiceCount())
	return math.Round(multiplier * investment)
}

// paybackLabel buckets the months needed for the estimated return to cover
// the monthly investment.
func paybackLabel(investment, roi float64) string {
	profit := roi - investment
	if profit <= 0 {
		return "6-12 meses"
	}

	months := math.Ceil(investment / profit)
	switch {
	case months <= 1:
		return "Inmediato"
	case months <= 3:
		return "1-3 meses"
	case months <= 6:
		return "3-6 meses"
	default:
		return "6-12 meses"
	}
}

// confidenceScore rewards signal-rich submissions. More context about the
// business means a tighter estimate.
func confidenceScore(sub domain.QuoteSubmission) int {
	score := baseConfidence
	if sub.Business.Website != "" {
		score += 5
	}
	if sub.Business.MonthlyRevenue != "" {
		score += 10
	}
	if sub.Goals.Competitors != "" {
		score += 5
	}
	if len(sub.Services.CurrentCampaigns) > 0 {
		score += 10
	}
	if sub.Requirements.HasExistingAssets {
		score += 5
	}
	if sub.Goals.Timeline != domain.TimelineImmediate {
		score += 5
	}
	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}

func normalizeIndustry(industry string) string {
	return strings.ToLower(strings.TrimSpace(industry))
}
