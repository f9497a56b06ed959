package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ipinspect/internal/overlap"
)

func newOverlapsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps [file]",
		Short: "Report every overlapping pair in a list of CIDR blocks",
		Long: "Reads one CIDR block per line from file, or from stdin when file is omitted or \"-\".\n" +
			"Blank lines and text after '#' are ignored.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open cidr list: %w", err)
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return reportOverlaps(cmd, newPrinter(cmd.OutOrStdout()), in, name, opts)
		},
	}
}

func reportOverlaps(cmd *cobra.Command, out *printer, in io.Reader, name string, opts *options) error {
	entries, err := overlap.ReadEntries(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	log.Debug("Evaluating overlap matrix", "source", name, "networks", len(entries), "workers", opts.cfg.Workers)

	pairs, err := overlap.Matrix(cmd.Context(), overlap.Prefixes(entries), opts.cfg.Workers)
	if err != nil {
		return err
	}

	total := len(entries) * (len(entries) - 1) / 2
	out.line("Checked %d networks (%d pairs) from %s", len(entries), total, name)

	for _, pair := range pairs {
		left, right := entries[pair.Left], entries[pair.Right]
		if opts.verbose {
			out.line("  line %d / line %d: %s", left.Line, right.Line, describeRelation(left.Prefix, right.Prefix, pair.Relation))
		} else {
			out.line("  %s overlaps %s", left.Text, right.Text)
		}
	}

	if len(pairs) == 0 {
		out.ok("No overlapping networks")
	} else {
		out.bad("%d overlapping pair(s)", len(pairs))
	}
	return nil
}
