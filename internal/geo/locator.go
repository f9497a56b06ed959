// Package geo resolves addresses to countries using a local GeoLite2 Country
// database. It never downloads anything; without a database file every
// lookup reports ErrUnavailable.
package geo

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/oschwald/geoip2-golang"

	"ipinspect/internal/ipcalc"
)

var (
	ErrUnavailable = errors.New("geolocation database not configured")
	ErrNotFound    = errors.New("no country recorded for address")
)

// Country is the result of a successful lookup.
type Country struct {
	ISOCode string
	Name    string
}

// Locator wraps an open country database. A nil *Locator is valid and
// answers every lookup with ErrUnavailable.
type Locator struct {
	mu     sync.RWMutex
	reader *geoip2.Reader
	path   string
}

// Open loads the database at path. An empty path yields a nil Locator and no
// error, which is how lookups are switched off.
func Open(path string) (*Locator, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geolite database: %w", err)
	}

	reader, err := geoip2.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("open geolite database %s: %w", path, err)
	}

	return &Locator{reader: reader, path: path}, nil
}

func (l *Locator) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Lookup returns the country recorded for addr.
func (l *Locator) Lookup(addr ipcalc.Address) (Country, error) {
	if l == nil {
		return Country{}, ErrUnavailable
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.reader == nil {
		return Country{}, ErrUnavailable
	}

	record, err := l.reader.Country(net.IP(addr.NetIP().AsSlice()))
	if err != nil {
		return Country{}, fmt.Errorf("lookup %s: %w", addr, err)
	}
	if record.Country.IsoCode == "" {
		return Country{}, fmt.Errorf("%w: %s", ErrNotFound, addr)
	}

	return Country{
		ISOCode: record.Country.IsoCode,
		Name:    record.Country.Names["en"],
	}, nil
}

func (l *Locator) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.reader == nil {
		return nil
	}
	err := l.reader.Close()
	l.reader = nil
	return err
}
