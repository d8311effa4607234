package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkt-tools/quote-forge/pkg/services/lead"
)

type ScoreCmd struct {
	email     string
	company   string
	phone     string
	budget    string
	platforms []string
	out       io.Writer
}

// NewScoreCmd builds the `score` subcommand for quick lead qualification.
func NewScoreCmd(out io.Writer) *cobra.Command {
	sc := &ScoreCmd{out: out}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a lead from contact and intent signals",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.email, "email", "", "Lead email address")
	cmd.Flags().StringVar(&sc.company, "company", "", "Lead company name")
	cmd.Flags().StringVar(&sc.phone, "phone", "", "Lead phone number")
	cmd.Flags().StringVar(&sc.budget, "budget", "", "Budget bracket (1k-5k, 5k-10k, 10k+)")
	cmd.Flags().StringSliceVar(&sc.platforms, "platform", nil, "Selected platform, repeatable")

	return cmd
}

func (sc *ScoreCmd) run(cmd *cobra.Command, args []string) error {
	score := lead.Score(lead.Signals{
		Email:     sc.email,
		Company:   sc.company,
		Phone:     sc.phone,
		Budget:    sc.budget,
		Platforms: sc.platforms,
	})

	_, err := fmt.Fprintf(sc.out, "Lead score: %d/100\n", score)
	return err
}
