package cli

import (
	"github.com/spf13/cobra"

	"ipinspect/internal/crawler"
)

func newSourcesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage the crawler IP range source list",
	}
	cmd.AddCommand(newSourcesListCommand(opts), newSourcesInitCommand(opts))
	return cmd
}

func newSourcesListCommand(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and additional crawler sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := newPrinter(cmd.OutOrStdout())

			catalog := crawler.Load(opts.cfg.SourcesFile)
			if catalog.FileErr != nil && opts.verbose {
				out.note("No additional sources file used: %v", catalog.FileErr)
			}

			sources := catalog.Sources
			if name != "" {
				sources = crawler.FilterByName(sources, name)
			}
			if len(sources) == 0 {
				out.note("No crawler sources match %q", name)
				return nil
			}
			out.sources(sources, opts.verbose)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "only show sources whose name contains this text (case-insensitive)")
	return cmd
}

func newSourcesInitCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample additional sources file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.SourcesFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := crawler.WriteSample(path, force); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).ok("Wrote sample crawler sources to %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
