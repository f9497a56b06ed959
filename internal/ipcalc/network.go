package ipcalc

import (
	"fmt"

	"lukechampine.com/uint128"
)

func mask4(bits int) uint32 {
	// A shift by the full width is spelled out instead of relied upon.
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << uint(32-bits)
}

func mask6(bits int) uint128.Uint128 {
	if bits == 0 {
		return uint128.Zero
	}
	return uint128.Max.Lsh(uint(128 - bits))
}

// checkPrefix panics when bits is not a legal prefix length for addr. Callers
// are expected to have validated their input through ParseCIDR or PrefixFrom.
func checkPrefix(addr Address, bits int) {
	if !addr.IsValid() {
		panic("ipcalc: prefix applied to an invalid address")
	}
	if bits < 0 || bits > addr.family.BitLen() {
		panic(fmt.Sprintf("ipcalc: prefix length %d out of range for %s address %s", bits, addr.family, addr))
	}
}

// Network returns addr with every bit past the first bits cleared.
func Network(addr Address, bits int) Address {
	checkPrefix(addr, bits)
	if addr.Is4() {
		return AddrFrom4(addr.v4 & mask4(bits))
	}
	return AddrFrom16(addr.v6.And(mask6(bits)))
}

// Last returns the highest address of the block, with every host bit set.
func (p Prefix) Last() Address {
	checkPrefix(p.addr, int(p.bits))
	if p.addr.Is4() {
		return AddrFrom4(p.addr.v4 | ^mask4(int(p.bits)))
	}
	return AddrFrom16(p.addr.v6.Or(uint128.Max.Xor(mask6(int(p.bits)))))
}
