// Package geotest writes small GeoLite2 Country databases for tests.
package geotest

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxmind/mmdbwriter"
	"github.com/maxmind/mmdbwriter/mmdbtype"
)

// Network is one block of the generated database. An empty ISOCode stores a
// record without a country.
type Network struct {
	CIDR    string
	ISOCode string
	Name    string
}

// WriteCountryDatabase writes networks to a GeoLite2-Country file inside
// tb.TempDir and returns its path.
func WriteCountryDatabase(tb testing.TB, networks ...Network) string {
	tb.Helper()

	tree, err := mmdbwriter.New(mmdbwriter.Options{
		DatabaseType: "GeoLite2-Country",
		Description:  map[string]string{"en": "ipinspect test database"},
		Languages:    []string{"en"},
		IPVersion:    6,
		RecordSize:   24,
	})
	if err != nil {
		tb.Fatalf("create mmdb tree: %v", err)
	}

	for _, network := range networks {
		_, block, err := net.ParseCIDR(network.CIDR)
		if err != nil {
			tb.Fatalf("parse fixture network %q: %v", network.CIDR, err)
		}
		if err := tree.Insert(block, record(network)); err != nil {
			tb.Fatalf("insert %s: %v", network.CIDR, err)
		}
	}

	path := filepath.Join(tb.TempDir(), "GeoLite2-Country.mmdb")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create mmdb file: %v", err)
	}
	if _, err := tree.WriteTo(f); err != nil {
		f.Close()
		tb.Fatalf("write mmdb file: %v", err)
	}
	if err := f.Close(); err != nil {
		tb.Fatalf("close mmdb file: %v", err)
	}
	return path
}

func record(network Network) mmdbtype.Map {
	if network.ISOCode == "" {
		return mmdbtype.Map{
			"continent": mmdbtype.Map{"code": mmdbtype.String("EU")},
		}
	}
	return mmdbtype.Map{
		"country": mmdbtype.Map{
			"iso_code": mmdbtype.String(network.ISOCode),
			"names":    mmdbtype.Map{"en": mmdbtype.String(network.Name)},
		},
	}
}
