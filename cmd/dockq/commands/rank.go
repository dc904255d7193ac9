package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank --target TARGET SMILES...",
		Short: "Score molecules against a target and rank them best binder first",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			target, _ := cmd.Flags().GetString("target")
			ranking, err := c.app.Rank(cmd.Context(), args, target)
			if err != nil {
				return err
			}
			return newPrinterFor(cmd).ranking(ranking)
		},
	}
	cmd.Flags().StringP("target", "t", "", "Protein target to dock against")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
