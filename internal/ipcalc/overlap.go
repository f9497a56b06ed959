package ipcalc

// Overlaps reports whether the networks addr1/bits1 and addr2/bits2 share at
// least one address. Addresses of different families never overlap. The
// shorter prefix decides the resolution of the comparison, so a /0 overlaps
// every block of its own family.
//
// Prefix lengths must already be valid for their families; anything else is
// a caller bug and panics.
func Overlaps(addr1 Address, bits1 int, addr2 Address, bits2 int) bool {
	checkPrefix(addr1, bits1)
	checkPrefix(addr2, bits2)

	if addr1.family != addr2.family {
		return false
	}

	shortest := min(bits1, bits2)
	return Network(addr1, shortest) == Network(addr2, shortest)
}

func (p Prefix) Overlaps(o Prefix) bool {
	return Overlaps(p.addr, int(p.bits), o.addr, int(o.bits))
}

// Relation describes how two blocks relate to each other.
type Relation uint8

const (
	Disjoint Relation = iota
	Equal
	// Contains means the left block is a strict superset of the right one.
	Contains
	ContainedBy
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Equal:
		return "equal"
	case Contains:
		return "contains"
	case ContainedBy:
		return "contained by"
	default:
		return "unknown"
	}
}

// Overlapping is true for every relation except Disjoint.
func (r Relation) Overlapping() bool {
	return r != Disjoint
}

// RelationOf classifies a against b. Overlapping blocks are always nested,
// so the prefix lengths alone decide which side contains the other.
func RelationOf(a, b Prefix) Relation {
	if !a.Overlaps(b) {
		return Disjoint
	}
	switch {
	case a.bits == b.bits:
		return Equal
	case a.bits < b.bits:
		return Contains
	default:
		return ContainedBy
	}
}
