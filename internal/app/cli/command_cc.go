package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ipinspect/internal/config"
	"ipinspect/internal/geo"
	"ipinspect/internal/ipcalc"
)

func newCountryCodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cc <ip>",
		Short: "Look up the country of an address in a local GeoLite2 database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCountryCode(newPrinter(cmd.OutOrStdout()), args[0], opts)
		},
	}
}

func checkCountryCode(out *printer, text string, opts *options) error {
	addr, err := ipcalc.ParseAddress(text)
	if err != nil {
		return err
	}

	out.line("Checking country code for %s...", addr)
	if opts.verbose {
		out.addressDetails(addr)
	}

	locator, err := geo.Open(opts.cfg.GeoIPDatabase)
	if err != nil {
		return err
	}
	defer func() {
		if err := locator.Close(); err != nil {
			log.Warn("Failed to close geolite database", "error", err)
		}
	}()

	country, err := locator.Lookup(addr)
	switch {
	case errors.Is(err, geo.ErrUnavailable):
		out.note("Country lookup unavailable: set %s or --geoip-db to a GeoLite2 Country database", config.EnvGeoIPDatabase)
		return nil
	case errors.Is(err, geo.ErrNotFound):
		out.bad("Country: unknown")
		return nil
	case err != nil:
		return err
	}

	if country.Name != "" {
		out.ok("Country: %s (%s)", country.ISOCode, country.Name)
	} else {
		out.ok("Country: %s", country.ISOCode)
	}
	if opts.verbose {
		out.field("", "Database", "%s", locator.Path())
	}
	return nil
}
