package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the score cache",
	}
	cmd.AddCommand(c.newCacheStatsCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	cmd.AddCommand(c.newCacheHitRateCmd())
	return cmd
}

func (c *CLI) newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many scores are cached per target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.CacheStats()
			if err != nil {
				return err
			}
			return newPrinterFor(cmd).stats(stats)
		},
	}
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, _ := cmd.Flags().GetString("target")
			removed, err := c.app.ClearCache(target)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached scores\n", removed)
			return nil
		},
	}
	cmd.Flags().StringP("target", "t", "", "Only clear the scores of this target")
	return cmd
}

func (c *CLI) newCacheHitRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hit-rate --target TARGET SMILES...",
		Short: "Report how many molecules already have a cached score",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("target")
			rate, err := c.app.CacheHitRate(args, target)
			if err != nil {
				return err
			}
			return newPrinterFor(cmd).hitRate(rate)
		},
	}
	cmd.Flags().StringP("target", "t", "", "Protein target to check")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
