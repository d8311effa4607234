package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/mkt-tools/quote-forge/pkg/services/pricing"
)

type CatalogCmd struct {
	catalogPath string
	out         io.Writer
}

// NewCatalogCmd builds the `catalog` subcommand: print the effective
// price list, including any override file.
func NewCatalogCmd(out io.Writer) *cobra.Command {
	cc := &CatalogCmd{out: out}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective price catalog",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.catalogPath, "catalog", "", "Path to a catalog override file")

	return cmd
}

func (cc *CatalogCmd) run(cmd *cobra.Command, args []string) error {
	catalog, err := pricing.LoadCatalog(cc.catalogPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cc.out, "Services:")
	for _, id := range sortedKeys(catalog.Services) {
		entry := catalog.Services[id]
		fmt.Fprintf(cc.out, "  %-18s %-28s $%.0f/mo (setup $%.0f)\n",
			id, entry.Name, entry.BasePrice, entry.SetupFee)
	}

	fmt.Fprintln(cc.out, "\nAdd-ons:")
	for _, id := range sortedKeys(catalog.AddOns) {
		entry := catalog.AddOns[id]
		if entry.Frequency == domain.FrequencyOneTime {
			fmt.Fprintf(cc.out, "  %-18s %-28s $%.0f one-time\n", id, entry.Name, entry.SetupPrice)
			continue
		}
		fmt.Fprintf(cc.out, "  %-18s %-28s $%.0f/mo\n", id, entry.Name, entry.MonthlyPrice)
	}

	fmt.Fprintf(cc.out, "\nMinimum management fee: $%.0f\n", catalog.MinimumManagementFee)
	fmt.Fprintln(cc.out, "Management fee tiers (ad spend -> rate):")
	for _, tier := range catalog.ManagementTiers {
		fmt.Fprintf(cc.out, "  >= $%-8.0f %.0f%%\n", tier.Threshold, tier.Rate*100)
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
