package overlap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"ipinspect/internal/ipcalc"
)

// Entry is one CIDR line read from a list.
type Entry struct {
	Line   int
	Text   string
	Prefix ipcalc.Prefix
}

// ReadEntries reads one CIDR per line. Blank lines and lines starting with
// '#' are skipped; trailing "# comment" text is stripped. Every valid line is
// returned even when others fail; the failures come back joined, each tagged
// with its line number.
func ReadEntries(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 1024*1024)

	var (
		entries []Entry
		errs    []error
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		prefix, err := ipcalc.ParseCIDR(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		entries = append(entries, Entry{Line: lineNo, Text: text, Prefix: prefix})
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read cidr list: %w", err))
	}

	return entries, errors.Join(errs...)
}

// Prefixes extracts the parsed prefixes in entry order.
func Prefixes(entries []Entry) []ipcalc.Prefix {
	out := make([]ipcalc.Prefix, len(entries))
	for i, entry := range entries {
		out[i] = entry.Prefix
	}
	return out
}
