package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go4.org/netipx"

	"ipinspect/internal/crawler"
	"ipinspect/internal/ipcalc"
)

// printer writes human-readable results. Styles come from a renderer bound
// to the output, so redirected output stays plain text.
type printer struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	label   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Bold(true),
	}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) ok(format string, args ...any) {
	p.line("%s", p.success.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *printer) bad(format string, args ...any) {
	p.line("%s", p.failure.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (p *printer) note(format string, args ...any) {
	p.line("%s", p.info.Render("ℹ "+fmt.Sprintf(format, args...)))
}

func (p *printer) field(indent, name, format string, args ...any) {
	p.line("%s%s %s", indent, p.label.Render(name+":"), fmt.Sprintf(format, args...))
}

// addressDetails prints the verbose block for a single address.
func (p *printer) addressDetails(addr ipcalc.Address) {
	p.field("", "IP Address", "%s", addr)
	p.field("", "Type", "%s", ipcalc.Describe(addr))
	if addr.Is4() {
		p.field("", "Octets", "%v", addr.Octets())
	} else {
		p.field("", "Segments", "%v", addr.Segments())
	}
}

// networkDetails prints the verbose block for one side of a CIDR check.
func (p *printer) networkDetails(index int, input string, prefix ipcalc.Prefix) {
	p.line("Network %d: %s -> IP: %s, Prefix: %d", index, input, prefix.Addr(), prefix.Bits())

	span := netipx.RangeOfPrefix(prefix.NetIPPrefix())
	p.field("  ", "Type", "%s", ipcalc.Describe(prefix.Addr()))
	p.field("  ", "Network", "%s", prefix.Masked())
	p.field("  ", "Range", "%s - %s", span.From(), span.To())
	// /31 and /32 have no broadcast address.
	if prefix.Family() == ipcalc.IPv4 && prefix.Bits() <= 30 {
		p.field("  ", "Broadcast", "%s", prefix.Last())
	}
	p.field("  ", "Size", "2^%d addresses", prefix.Family().BitLen()-prefix.Bits())
}

func (p *printer) sources(sources []crawler.Source, verbose bool) {
	for i, source := range sources {
		p.line("%d. %s", i+1, source.Name)
		if !verbose {
			continue
		}
		p.field("   ", "URL", "%s", source.URL)
		p.field("   ", "Provider", "%s", source.Provider())
		p.field("   ", "Format", "%s", source.Format)
		p.field("   ", "Description", "%s", source.Description)
		p.line("")
	}
}

func describeRelation(a, b ipcalc.Prefix, rel ipcalc.Relation) string {
	switch rel {
	case ipcalc.Equal:
		return fmt.Sprintf("%s and %s cover the same addresses", a.Masked(), b.Masked())
	case ipcalc.Contains:
		return fmt.Sprintf("%s contains %s", a.Masked(), b.Masked())
	case ipcalc.ContainedBy:
		return fmt.Sprintf("%s is contained by %s", a.Masked(), b.Masked())
	default:
		return fmt.Sprintf("%s and %s are disjoint", a.Masked(), b.Masked())
	}
}
