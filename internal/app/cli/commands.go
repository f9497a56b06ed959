package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ipinspect/internal/app/version"
	"ipinspect/internal/config"
)

type options struct {
	cfg     config.Config
	verbose bool
}

// NewRootCommand wires every subcommand around cfg. Flags override the
// values cfg was loaded with.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	root := &cobra.Command{
		Use:           "ipinspect",
		Short:         "Inspect IP addresses and CIDR ranges",
		Long:          "ipinspect validates IP and CIDR syntax, classifies addresses and checks whether CIDR blocks overlap.",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := opts.cfg.LogLevel
			if opts.verbose && level > log.DebugLevel {
				level = log.DebugLevel
			}
			log.SetLevel(level)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print detailed information")
	flags.StringVar(&opts.cfg.SourcesFile, "sources", cfg.SourcesFile, "additional crawler sources JSON file")
	flags.StringVar(&opts.cfg.GeoIPDatabase, "geoip-db", cfg.GeoIPDatabase, "GeoLite2 Country database used by cc")
	flags.IntVar(&opts.cfg.Workers, "workers", cfg.Workers, "goroutines used by batch overlap checks")

	root.AddCommand(
		newCIDRCommand(opts),
		newOverlapsCommand(opts),
		newCrawlerCommand(opts),
		newCountryCodeCommand(opts),
		newSourcesCommand(opts),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ipinspect "+version.Get().String())
		},
	}
}
