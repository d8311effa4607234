// Package email renders and delivers the quote confirmation email.
package email

import (
	"fmt"
	"strings"

	"github.com/osteele/liquid"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

// quoteTemplate is the Liquid source for the confirmation email body.
const quoteTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #1a1a1a;">
  <h2>Hola {{ contact_name | default: "there" }},</h2>
  <p>Gracias por tu interés, {{ company }}. Aquí está tu propuesta personalizada:</p>

  <table width="100%" cellpadding="6" style="border-collapse: collapse;">
    <tr style="background: #f4f4f4;">
      <th align="left">Servicio</th><th align="right">Precio</th><th align="left">Frecuencia</th>
    </tr>
    {% for line in lines %}
    <tr>
      <td>{{ line.name }}</td>
      <td align="right">${{ line.total }}</td>
      <td>{{ line.frequency }}</td>
    </tr>
    {% endfor %}
  </table>

  {% if discounts != empty %}
  <h3>Descuentos aplicados</h3>
  <ul>
    {% for d in discounts %}
    <li>{{ d.description }}: -${{ d.amount }}</li>
    {% endfor %}
  </ul>
  {% endif %}

  <p><strong>Gestión mensual:</strong> ${{ monthly_management }}<br>
  <strong>Inversión publicitaria recomendada:</strong> ${{ recommended_ad_spend }}<br>
  <strong>Inversión mensual total:</strong> ${{ total_monthly_investment }}<br>
  <strong>Setup inicial:</strong> ${{ setup_total }}</p>

  <p><strong>Retorno mensual estimado:</strong> ${{ estimated_roi }}<br>
  <strong>Periodo de recuperación:</strong> {{ payback_period }}</p>

  <p>Esta propuesta es válida hasta el {{ expires_at }}.</p>
</body>
</html>`

// Renderer turns quote records into the HTML and plain-text email bodies.
type Renderer struct {
	engine   *liquid.Engine
	template *liquid.Template
}

func NewRenderer() (*Renderer, error) {
	engine := liquid.NewEngine()
	tpl, err := engine.ParseTemplate([]byte(quoteTemplate))
	if err != nil {
		return nil, fmt.Errorf("parse quote template: %w", err)
	}
	return &Renderer{engine: engine, template: tpl}, nil
}

// RenderHTML renders the confirmation email body for a quote.
func (r *Renderer) RenderHTML(rec domain.QuoteRecord) (string, error) {
	out, err := r.template.Render(bindings(rec))
	if err != nil {
		return "", fmt.Errorf("render quote template: %w", err)
	}
	return string(out), nil
}

// RenderText produces the plain-text alternative.
func (r *Renderer) RenderText(rec domain.QuoteRecord) string {
	var b strings.Builder
	calc := rec.Calculation

	fmt.Fprintf(&b, "Propuesta para %s\n\n", rec.Submission.Business.CompanyName)
	for _, line := range calc.Services {
		fmt.Fprintf(&b, "- %s: $%s (%s)\n", line.Name, money(line.Total), line.Frequency)
	}
	fmt.Fprintf(&b, "\nGestión mensual: $%s\n", money(calc.MonthlyManagement))
	fmt.Fprintf(&b, "Inversión publicitaria recomendada: $%s\n", money(calc.RecommendedAdSpend))
	fmt.Fprintf(&b, "Inversión mensual total: $%s\n", money(calc.TotalMonthlyInvestment))
	fmt.Fprintf(&b, "Retorno mensual estimado: $%s\n", money(calc.EstimatedROI))
	fmt.Fprintf(&b, "Periodo de recuperación: %s\n", calc.PaybackPeriod)
	fmt.Fprintf(&b, "\nVálida hasta el %s.\n", rec.ExpiresAt.Format("2006-01-02"))
	return b.String()
}

func bindings(rec domain.QuoteRecord) map[string]interface{} {
	calc := rec.Calculation

	lines := make([]map[string]interface{}, 0, len(calc.Services))
	for _, line := range calc.Services {
		lines = append(lines, map[string]interface{}{
			"name":      line.Name,
			"total":     money(line.Total),
			"frequency": string(line.Frequency),
		})
	}

	discounts := make([]map[string]interface{}, 0, len(calc.Discounts))
	for _, d := range calc.Discounts {
		discounts = append(discounts, map[string]interface{}{
			"description": d.Description,
			"amount":      money(d.Amount),
		})
	}

	return map[string]interface{}{
		"contact_name":             rec.Submission.Business.ContactName,
		"company":                  rec.Submission.Business.CompanyName,
		"lines":                    lines,
		"discounts":                discounts,
		"monthly_management":       money(calc.MonthlyManagement),
		"recommended_ad_spend":     money(calc.RecommendedAdSpend),
		"total_monthly_investment": money(calc.TotalMonthlyInvestment),
		"setup_total":              money(calc.SetupTotal),
		"estimated_roi":            money(calc.EstimatedROI),
		"payback_period":           calc.PaybackPeriod,
		"expires_at":               rec.ExpiresAt.Format("2006-01-02"),
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
