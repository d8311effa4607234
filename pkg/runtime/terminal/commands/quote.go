package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkt-tools/quote-forge/pkg/models/api"
	"github.com/mkt-tools/quote-forge/pkg/runtime/terminal/export"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
)

type QuoteCmd struct {
	inputPath   string
	catalogPath string
	reporter    *export.Reporter
}

// NewQuoteCmd builds the `quote` subcommand: compute a breakdown from a
// submission file without touching any backend.
func NewQuoteCmd(reporter *export.Reporter) *cobra.Command {
	qc := &QuoteCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Calculate a quote from a submission file",
		RunE:  qc.run,
	}

	cmd.Flags().StringVar(&qc.inputPath, "input", "", "Path to a JSON quote submission")
	cmd.Flags().StringVar(&qc.catalogPath, "catalog", "", "Path to a catalog override file")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (qc *QuoteCmd) run(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(qc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read submission: %w", err)
	}

	var req api.QuoteRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to parse submission: %w", err)
	}

	catalog, err := pricing.LoadCatalog(qc.catalogPath)
	if err != nil {
		return err
	}

	sub := api.ToDomainSubmission(req)
	calc := pricing.NewCalculator(catalog).Calculate(sub)

	return qc.reporter.Handle(sub.Business.CompanyName, calc)
}
