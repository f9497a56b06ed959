package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ipinspect/internal/ipcalc"
)

func newCIDRCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "cidr <network1> <network2>",
		Short:   "Check whether two CIDR blocks overlap",
		Example: "  ipinspect cidr 192.168.1.0/24 192.168.0.0/16",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCIDROverlap(newPrinter(cmd.OutOrStdout()), args[0], args[1], opts.verbose)
		},
	}
}

func checkCIDROverlap(out *printer, network1, network2 string, verbose bool) error {
	out.line("Checking CIDR overlap between %s and %s...", network1, network2)

	first, err := ipcalc.ParseCIDR(network1)
	if err != nil {
		return err
	}
	second, err := ipcalc.ParseCIDR(network2)
	if err != nil {
		return err
	}

	log.Debug("Parsed networks", "first", first, "second", second)

	if verbose {
		out.networkDetails(1, network1, first)
		out.networkDetails(2, network2, second)
	} else {
		out.line("Network 1: %s", first.Masked())
		out.line("Network 2: %s", second.Masked())
	}

	if first.Family() != second.Family() {
		out.note("%s and %s belong to different address families", first.Family(), second.Family())
	}

	rel := ipcalc.RelationOf(first, second)
	if verbose {
		out.field("", "Relation", "%s", describeRelation(first, second, rel))
	}

	if first.Overlaps(second) {
		out.ok("Overlap: yes")
	} else {
		out.bad("Overlap: no")
	}
	return nil
}
