package domain

import "time"

// Frequency tags a quote line as recurring or one-time.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyOneTime Frequency = "one-time"
)

// DiscountType identifies the rule that produced a discount.
type DiscountType string

const (
	DiscountBundle     DiscountType = "bundle"
	DiscountVolume     DiscountType = "volume"
	DiscountCommitment DiscountType = "commitment"
	DiscountFirstTime  DiscountType = "first-time"
)

type QuoteServiceLine struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64
	Total       float64 // UnitPrice * Quantity
	Frequency   Frequency
}

type Discount struct {
	Type        DiscountType
	Description string
	Amount      float64
	Percentage  float64 // 0 when the discount is a flat amount
}

// QuoteCalculation is the full cost and ROI breakdown for one submission.
type QuoteCalculation struct {
	Services               []QuoteServiceLine
	SetupTotal             float64
	MonthlyManagement      float64 // after discounts, floored at the minimum fee
	RecommendedAdSpend     float64
	TotalMonthlyInvestment float64 // MonthlyManagement + RecommendedAdSpend
	EstimatedROI           float64 // monthly, in currency units
	PaybackPeriod          string
	ConfidenceScore        int // 60-95
	Discounts              []Discount
}

// DiscountAmount sums every discount applied to the calculation.
func (c QuoteCalculation) DiscountAmount() float64 {
	total := 0.0
	for _, d := range c.Discounts {
		total += d.Amount
	}
	return total
}

// QuoteRecord wraps a calculation with the identity and validity window the
// platform attaches to it. The engine never sets these fields.
type QuoteRecord struct {
	ID          string
	Submission  QuoteSubmission
	Calculation QuoteCalculation
	LeadScore   int
	CreatedAt   time.Time
	ExpiresAt   time.Time
}
