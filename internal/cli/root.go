// Package cli implements the aishub command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "aishub",
		Short:         "aishub — query the AISHub vessel-tracking web service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML profile (default $HOME/.aishub.yaml if present)")
	flags.StringVarP(&opts.username, "username", "u", "", "AISHub account username")
	flags.IntVar(&opts.format, "format", 1, "field format: 0 raw AIS, 1 human-readable")
	flags.StringVarP(&opts.output, "output", "o", "json", "response serialization: json, xml or csv")
	flags.IntVar(&opts.compress, "compress", 0, "transport compression: 0 none, 1 zip, 2 gzip, 3 bzip2")
	flags.StringVar(&opts.endpoint, "url", "", "web service URL (default the public AISHub endpoint)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		newVesselCmd(opts),
		newAreaCmd(opts),
		newAllCmd(opts),
	)

	return cmd
}
