// Package commands implements the CLI commands for dockq.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dockq/internal/build"
	"go.trai.ch/dockq/internal/core/domain"
)

// CLI represents the command line interface for dockq.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Rank(ctx context.Context, molecules []string, target string) (domain.Ranking, error)
	Explain(key string) (domain.Explanation, error)
	Interpret(score float64) domain.Interpretation
	Targets() []domain.TargetProfile
	Target(id string) (domain.TargetDetails, error)
	CacheStats() (domain.CacheStats, error)
	ClearCache(target string) (int, error)
	CacheHitRate(molecules []string, target string) (domain.HitRate, error)
	Serve(ctx context.Context, addr string) error
	ServeMCP(ctx context.Context, port int) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dockq",
		Short:         "Rank molecules by docking score against protein targets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRankCmd())
	rootCmd.AddCommand(c.newExplainCmd())
	rootCmd.AddCommand(c.newInterpretCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newTargetCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newMCPCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func newPrinterFor(cmd *cobra.Command) *printer {
	asJSON, _ := cmd.Flags().GetBool("json")
	return newPrinter(cmd.OutOrStdout(), asJSON)
}
