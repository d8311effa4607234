package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

type TableConfig struct {
	NameWidth        int
	PriceWidth       int
	FrequencyWidth   int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        30,
		PriceWidth:       12,
		FrequencyWidth:   10,
		DescriptionWidth: 54,
	}
}

// Reporter renders a quote breakdown as a console table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(company string, calc domain.QuoteCalculation) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, price interface{}, frequency, desc string) string {
			return fmt.Sprintf("| %-*s | %*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.PriceWidth, price,
				c.config.FrequencyWidth, frequency,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.PriceWidth+2),
				strings.Repeat("-", c.config.FrequencyWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
		"money": func(v float64) string {
			return fmt.Sprintf("$%.0f", v)
		},
	}

	tmpl := `
Quote for {{.Company}}

{{separator}}
{{formatRow "Service" "Price" "Frequency" "Description"}}
{{separator}}
{{range .Calc.Services}}{{formatRow .Name (money .Total) (printf "%s" .Frequency) .Description}}
{{end}}{{separator}}
{{if .Calc.Discounts}}
Discounts:
{{range .Calc.Discounts}}  - {{.Description}}: -{{money .Amount}}
{{end}}{{end}}
Setup (one-time):           {{money .Calc.SetupTotal}}
Monthly management:         {{money .Calc.MonthlyManagement}}
Recommended ad spend:       {{money .Calc.RecommendedAdSpend}}
Total monthly investment:   {{money .Calc.TotalMonthlyInvestment}}

Estimated monthly return:   {{money .Calc.EstimatedROI}}
Payback period:             {{.Calc.PaybackPeriod}}
Confidence:                 {{.Calc.ConfidenceScore}}/100
`

	t, err := template.New("quote").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Company string
		Calc    domain.QuoteCalculation
	}{Company: company, Calc: calc})
}
