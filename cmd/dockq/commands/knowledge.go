package commands

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain KEY",
		Short: "Explain a target, score category, process or molecular property",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := c.app.Explain(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return newPrinterFor(cmd).explanation(exp)
		},
	}
}

func (c *CLI) newInterpretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interpret SCORE",
		Short: "Place a docking score in its binding-affinity category",
		// Scores are negative and would otherwise be parsed as shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON := false
			var rest []string
			for _, arg := range args {
				switch arg {
				case "-h", "--help":
					return cmd.Help()
				case "--json":
					asJSON = true
				default:
					rest = append(rest, arg)
				}
			}
			if len(rest) != 1 {
				return zerr.With(zerr.New("expected exactly one score"), "args", len(rest))
			}

			score, err := strconv.ParseFloat(rest[0], 64)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "score must be a number"), "score", rest[0])
			}
			if math.IsNaN(score) || math.IsInf(score, 0) {
				return zerr.With(zerr.New("score must be finite"), "score", rest[0])
			}
			return newPrinter(cmd.OutOrStdout(), asJSON).interpretation(c.app.Interpret(score))
		},
	}
}

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the configured protein targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newPrinterFor(cmd).targets(c.app.Targets())
		},
	}
}

func (c *CLI) newTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target ID",
		Short: "Describe a protein target and its known drugs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := c.app.Target(args[0])
			if err != nil {
				return err
			}
			return newPrinterFor(cmd).target(details)
		},
	}
}
