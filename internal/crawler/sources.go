// Package crawler holds the catalogue of published crawler IP range feeds.
// It only describes the feeds; nothing here downloads them.
package crawler

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/publicsuffix"
)

// DefaultSourcesFile is the sources file looked up when none is configured.
const DefaultSourcesFile = "additional_crawler_sources.json"

var ErrSampleExists = errors.New("sources file already exists")

type Source struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Format      string `json:"format"`
}

// Provider returns the registrable domain of the feed URL, e.g. "google.com"
// for developers.google.com. IP hosts and hosts the public suffix list cannot
// answer for are returned as is; a URL without a host yields "-".
func (s Source) Provider() string {
	parsed, err := url.Parse(s.URL)
	if err != nil {
		return "-"
	}
	host := strings.TrimSuffix(strings.ToLower(parsed.Hostname()), ".")
	if host == "" {
		return "-"
	}
	if _, err := netip.ParseAddr(host); err == nil {
		return host
	}
	etld, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return etld
}

//go:embed builtin_sources.json
var embeddedSources []byte

var (
	builtinSources     []Source
	additionalDefaults []Source
)

func init() {
	var catalogue struct {
		Builtin            []Source `json:"builtin"`
		AdditionalDefaults []Source `json:"additional_defaults"`
	}
	if err := json.Unmarshal(embeddedSources, &catalogue); err != nil {
		panic(fmt.Sprintf("crawler: embedded sources are malformed: %v", err))
	}
	builtinSources = catalogue.Builtin
	additionalDefaults = catalogue.AdditionalDefaults
}

// Builtin returns a copy of the sources compiled into the binary.
func Builtin() []Source {
	return append([]Source(nil), builtinSources...)
}

// AdditionalDefaults returns the sources used when no sources file is usable.
func AdditionalDefaults() []Source {
	return append([]Source(nil), additionalDefaults...)
}

// Catalog is the resolved list of crawler sources.
type Catalog struct {
	Sources []Source
	// FromFile is the number of entries read from the sources file.
	FromFile int
	// FileErr explains why the sources file was not used. It is nil when the
	// file was loaded or no path was given.
	FileErr error
}

// Load returns the built-in sources followed by the entries of the sources
// file at path. When the file is missing or invalid the additional defaults
// are used instead and the reason is kept in FileErr.
func Load(path string) Catalog {
	catalog := Catalog{Sources: Builtin()}

	if path == "" {
		catalog.Sources = append(catalog.Sources, additionalDefaults...)
		return catalog
	}

	extra, err := LoadAdditional(path)
	if err != nil {
		log.Debug("Falling back to default crawler sources", "path", path, "error", err)
		catalog.FileErr = err
		catalog.Sources = append(catalog.Sources, additionalDefaults...)
		return catalog
	}

	catalog.FromFile = len(extra)
	catalog.Sources = append(catalog.Sources, extra...)
	return catalog
}

// LoadAdditional reads a JSON array of sources from path.
func LoadAdditional(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}
	return sources, nil
}

// FilterByName keeps the sources whose name contains filter, ignoring case.
func FilterByName(sources []Source, filter string) []Source {
	needle := strings.ToLower(filter)
	var out []Source
	for _, source := range sources {
		if strings.Contains(strings.ToLower(source.Name), needle) {
			out = append(out, source)
		}
	}
	return out
}

func sampleSources() []Source {
	return []Source{
		{
			Name:        "Example Bot",
			URL:         "https://example.com/bot-ips.json",
			Description: "Example crawler IP ranges - customize this entry",
			Format:      "JSON",
		},
		{
			Name:        "Another Bot",
			URL:         "https://another-example.com/crawler-ranges.json",
			Description: "Another example crawler - add more as needed",
			Format:      "JSON",
		},
	}
}

// WriteSample writes an example sources file to path. An existing file is
// only replaced when force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrSampleExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat sources file: %w", err)
		}
	}

	data, err := json.MarshalIndent(sampleSources(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sample sources: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write sources file: %w", err)
	}
	return nil
}
