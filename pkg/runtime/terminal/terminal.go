package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkt-tools/quote-forge/pkg/runtime/terminal/commands"
	"github.com/mkt-tools/quote-forge/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-forge",
		Short: "Marketing quote and lead scoring tool",
	}

	cmd.AddCommand(commands.NewQuoteCmd(cli.reporter))
	cmd.AddCommand(commands.NewScoreCmd(cli.output))
	cmd.AddCommand(commands.NewCatalogCmd(cli.output))

	return cmd
}
