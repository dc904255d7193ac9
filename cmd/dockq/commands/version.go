package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dockq/internal/build"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func (c *CLI) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the dockq version and build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinterFor(cmd)
			switch {
			case p.asJSON:
				return p.json(versionInfo{Version: build.Version, Commit: build.Commit, Date: build.Date})
			case short:
				p.printf("%s\n", build.Version)
			default:
				p.printf("dockq version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
