package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	calc := domain.QuoteCalculation{
		Services: []domain.QuoteServiceLine{
			{Name: "Google Ads Management", Description: "Search campaigns",
				Quantity: 1, UnitPrice: 897, Total: 897, Frequency: domain.FrequencyMonthly},
			{Name: "Ad Spend Management Fee", Description: "Tiered fee",
				Quantity: 1, UnitPrice: 997, Total: 997, Frequency: domain.FrequencyMonthly},
		},
		SetupTotal:             500,
		MonthlyManagement:      1894,
		RecommendedAdSpend:     3000,
		TotalMonthlyInvestment: 4894,
		EstimatedROI:           13459,
		PaybackPeriod:          "Inmediato",
		ConfidenceScore:        65,
		Discounts: []domain.Discount{
			{Type: domain.DiscountBundle, Description: "Descuento por paquete de servicios", Amount: 189},
		},
	}

	err := reporter.Handle("Acme", calc)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Quote for Acme")
	assert.Contains(t, out, "Google Ads Management")
	assert.Contains(t, out, "$897")
	assert.Contains(t, out, "Descuento por paquete de servicios: -$189")
	assert.Contains(t, out, "Total monthly investment:   $4894")
	assert.Contains(t, out, "Payback period:             Inmediato")
	assert.Contains(t, out, "Confidence:                 65/100")
}

func TestReporter_NilWriterDefaultsToStdout(t *testing.T) {
	reporter := NewReporter(nil)
	assert.NotNil(t, reporter.writer)
}
