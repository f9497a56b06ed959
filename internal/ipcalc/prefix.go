package ipcalc

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Prefix is an address paired with a prefix length that fits its family.
// The address keeps whatever host bits it was created with; use Masked for
// the canonical network form.
type Prefix struct {
	addr Address
	bits uint8
}

// PrefixFrom validates bits against the family of addr.
func PrefixFrom(addr Address, bits int) (Prefix, error) {
	if !addr.IsValid() {
		return Prefix{}, fmt.Errorf("%w: invalid address", ErrInvalidCIDR)
	}
	if bits < 0 || bits > addr.family.BitLen() {
		return Prefix{}, fmt.Errorf("%w: %s", ErrInvalidCIDR, prefixRangeReason(addr.family, bits))
	}
	return Prefix{addr: addr, bits: uint8(bits)}, nil
}

// ParseCIDR parses "<address>/<prefix>" text. Address failures match both
// ErrInvalidCIDR and ErrInvalidFormat.
func ParseCIDR(text string) (Prefix, error) {
	if strings.Count(text, "/") != 1 {
		return Prefix{}, cidrError(text, "expected exactly one '/' separator", nil)
	}
	addrText, bitsText, _ := strings.Cut(text, "/")

	addr, err := ParseAddress(addrText)
	if err != nil {
		return Prefix{}, cidrError(text, "", err)
	}

	// A single explicit plus sign is allowed, as in "10.0.0.0/+8".
	bits, err := strconv.ParseUint(strings.TrimPrefix(bitsText, "+"), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return Prefix{}, cidrError(text, prefixRangeReason(addr.family, bitsText), nil)
	case err != nil:
		return Prefix{}, cidrError(text, fmt.Sprintf("prefix length %q is not a non-negative integer", bitsText), nil)
	case bits > uint64(addr.family.BitLen()):
		return Prefix{}, cidrError(text, prefixRangeReason(addr.family, bitsText), nil)
	}

	return Prefix{addr: addr, bits: uint8(bits)}, nil
}

// MustParseCIDR is like ParseCIDR but panics on error.
func MustParseCIDR(text string) Prefix {
	p, err := ParseCIDR(text)
	if err != nil {
		panic(err)
	}
	return p
}

func prefixRangeReason(family Family, bits any) string {
	return fmt.Sprintf("prefix length %v exceeds %d for %s address", bits, family.BitLen(), family)
}

func (p Prefix) Addr() Address { return p.addr }

func (p Prefix) Bits() int { return int(p.bits) }

func (p Prefix) Family() Family { return p.addr.family }

func (p Prefix) IsValid() bool { return p.addr.IsValid() }

// Network returns the address of the block with host bits cleared.
func (p Prefix) Network() Address {
	return Network(p.addr, int(p.bits))
}

func (p Prefix) Masked() Prefix {
	return Prefix{addr: p.Network(), bits: p.bits}
}

// Contains reports whether addr falls inside the block.
func (p Prefix) Contains(addr Address) bool {
	if addr.family != p.addr.family {
		return false
	}
	return Network(addr, int(p.bits)) == p.Network()
}

func (p Prefix) NetIPPrefix() netip.Prefix {
	return netip.PrefixFrom(p.addr.NetIP(), int(p.bits))
}

func (p Prefix) String() string {
	if !p.IsValid() {
		return "invalid Prefix"
	}
	return p.addr.String() + "/" + strconv.Itoa(int(p.bits))
}
