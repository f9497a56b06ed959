package cli

import (
	"github.com/spf13/cobra"

	"ipinspect/internal/crawler"
	"ipinspect/internal/ipcalc"
)

func newCrawlerCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "crawler <ip>",
		Short: "Show an address together with the configured crawler range sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCrawler(newPrinter(cmd.OutOrStdout()), args[0], opts)
		},
	}
}

func checkCrawler(out *printer, text string, opts *options) error {
	addr, err := ipcalc.ParseAddress(text)
	if err != nil {
		return err
	}

	out.line("Checking if %s is a crawler IP...", addr)

	if opts.verbose {
		out.addressDetails(addr)
		out.line("")
		out.line("Configured crawler IP sources:")

		catalog := crawler.Load(opts.cfg.SourcesFile)
		if catalog.FileErr != nil {
			out.note("No additional sources file used: %v", catalog.FileErr)
		} else if catalog.FromFile > 0 {
			out.ok("Loaded %d additional sources from %s", catalog.FromFile, opts.cfg.SourcesFile)
		}
		out.sources(catalog.Sources, true)
	}

	out.note("Crawler ranges are not downloaded; no range match was performed")
	return nil
}
