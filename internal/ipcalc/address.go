// Package ipcalc parses IP addresses and CIDR blocks, reduces them to their
// network addresses and decides whether two blocks overlap. Everything in
// here is pure and safe for concurrent use.
package ipcalc

import (
	"encoding/binary"
	"net/netip"
	"strings"

	"lukechampine.com/uint128"
)

// Family identifies the address space an Address belongs to.
type Family uint8

const (
	IPv4 Family = 4
	IPv6 Family = 6
)

// BitLen returns the width of the family in bits, or 0 for an unknown family.
func (f Family) BitLen() int {
	switch f {
	case IPv4:
		return 32
	case IPv6:
		return 128
	default:
		return 0
	}
}

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Address is an IPv4 or IPv6 address held as a plain integer. Only the field
// matching family is meaningful. The zero Address is invalid.
type Address struct {
	family Family
	v4     uint32
	v6     uint128.Uint128
}

func AddrFrom4(v uint32) Address {
	return Address{family: IPv4, v4: v}
}

func AddrFrom16(v uint128.Uint128) Address {
	return Address{family: IPv6, v6: v}
}

// AddrFromNetIP converts a netip.Addr. IPv4-mapped IPv6 addresses stay IPv6.
func AddrFromNetIP(ip netip.Addr) (Address, bool) {
	switch {
	case ip.Is4():
		b := ip.As4()
		return AddrFrom4(binary.BigEndian.Uint32(b[:])), true
	case ip.Is6():
		b := ip.As16()
		return AddrFrom16(uint128.FromBytesBE(b[:])), true
	default:
		return Address{}, false
	}
}

// ParseAddress parses dotted-quad IPv4 or standard IPv6 text, including the
// "::" shorthand. Zoned IPv6 addresses are rejected.
func ParseAddress(text string) (Address, error) {
	if text == "" {
		return Address{}, formatError(text, "empty address")
	}
	if strings.Contains(text, "%") {
		return Address{}, formatError(text, "zoned addresses are not supported")
	}

	ip, err := netip.ParseAddr(text)
	if err != nil {
		return Address{}, formatError(text, "")
	}

	addr, ok := AddrFromNetIP(ip)
	if !ok {
		return Address{}, formatError(text, "")
	}
	return addr, nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(text string) Address {
	addr, err := ParseAddress(text)
	if err != nil {
		panic(err)
	}
	return addr
}

func (a Address) Family() Family { return a.family }

func (a Address) IsValid() bool { return a.family == IPv4 || a.family == IPv6 }

func (a Address) Is4() bool { return a.family == IPv4 }

func (a Address) Is6() bool { return a.family == IPv6 }

// Uint32 returns the IPv4 value. It is zero for IPv6 addresses.
func (a Address) Uint32() uint32 { return a.v4 }

// Uint128 returns the IPv6 value. It is zero for IPv4 addresses.
func (a Address) Uint128() uint128.Uint128 { return a.v6 }

// Octets returns the four bytes of an IPv4 address, or nil for IPv6.
func (a Address) Octets() []byte {
	if !a.Is4() {
		return nil
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, a.v4)
	return b
}

// Segments returns the eight 16-bit groups of an IPv6 address, or nil for IPv4.
func (a Address) Segments() []uint16 {
	if !a.Is6() {
		return nil
	}
	var b [16]byte
	a.v6.PutBytesBE(b[:])
	segments := make([]uint16, 8)
	for i := range segments {
		segments[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return segments
}

func (a Address) NetIP() netip.Addr {
	switch a.family {
	case IPv4:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], a.v4)
		return netip.AddrFrom4(b)
	case IPv6:
		var b [16]byte
		a.v6.PutBytesBE(b[:])
		return netip.AddrFrom16(b)
	default:
		return netip.Addr{}
	}
}

func (a Address) String() string {
	if !a.IsValid() {
		return "invalid IP"
	}
	return a.NetIP().String()
}
