package ipcalc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestOverlapScenarios(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"192.168.1.0/24", "192.168.0.0/16", true},
		{"192.168.1.0/25", "192.168.1.128/25", false},
		{"192.168.1.0/24", "192.168.1.128/25", true},
		{"2001:db8::/32", "2001:db8:1::/48", true},
		{"2001:db8::/32", "2002:db8::/32", false},
		{"10.0.0.0/8", "11.0.0.0/8", false},
		{"10.0.0.1/32", "10.0.0.1/32", true},
		{"10.0.0.1/32", "10.0.0.2/32", false},
		{"10.0.0.77/24", "10.0.0.200/24", true},
		{"0.0.0.0/0", "203.0.113.9/32", true},
		{"::/0", "2001:db8::1/128", true},
		{"0.0.0.0/0", "::/0", false},
		{"192.0.2.0/24", "::ffff:192.0.2.0/120", false},
	}

	for _, tc := range cases {
		a, b := MustParseCIDR(tc.a), MustParseCIDR(tc.b)
		require.Equal(t, tc.want, a.Overlaps(b), "%s vs %s", tc.a, tc.b)
		require.Equal(t, tc.want, Overlaps(a.Addr(), a.Bits(), b.Addr(), b.Bits()), "%s vs %s", tc.a, tc.b)
	}
}

func randomPrefix(rng *rand.Rand, family Family) (Address, int) {
	if family == IPv4 {
		// Bias towards a small space so that random pairs actually collide.
		return AddrFrom4(0x0a000000 | rng.Uint32()&0xffff), rng.Intn(33)
	}
	hi := uint64(0x20010db800000000) | uint64(rng.Intn(4))<<16
	return AddrFrom16(uint128.New(rng.Uint64()&0xff, hi)), rng.Intn(129)
}

func TestOverlapIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		for _, family := range []Family{IPv4, IPv6} {
			a1, p1 := randomPrefix(rng, family)
			a2, p2 := randomPrefix(rng, family)
			require.Equal(t, Overlaps(a1, p1, a2, p2), Overlaps(a2, p2, a1, p1), "%s/%d vs %s/%d", a1, p1, a2, p2)
		}
	}
}

func TestOverlapFamilyMismatchIsFalse(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a1, p1 := randomPrefix(rng, IPv4)
		a2, p2 := randomPrefix(rng, IPv6)
		require.False(t, Overlaps(a1, p1, a2, p2))
		require.False(t, Overlaps(a2, p2, a1, p1))
	}
	require.False(t, Overlaps(MustParseAddress("0.0.0.0"), 0, MustParseAddress("::"), 0))
}

// A /0 block covers its whole family. This is deliberate: callers asking
// about 0.0.0.0/0 get an overlap with every IPv4 block.
func TestZeroPrefixOverlapsEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		for _, family := range []Family{IPv4, IPv6} {
			a1, _ := randomPrefix(rng, family)
			a2, p2 := randomPrefix(rng, family)
			require.True(t, Overlaps(a1, 0, a2, p2))
			require.True(t, Overlaps(a2, p2, a1, 0))
		}
	}
}

func TestSingleHostOverlapIsEquality(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		a := AddrFrom4(rng.Uint32() & 0xff)
		b := AddrFrom4(rng.Uint32() & 0xff)
		require.Equal(t, a == b, Overlaps(a, 32, b, 32))

		c := AddrFrom16(uint128.From64(rng.Uint64() & 0xff))
		d := AddrFrom16(uint128.From64(rng.Uint64() & 0xff))
		require.Equal(t, c == d, Overlaps(c, 128, d, 128))
	}
}

// Overlap means one block contains the other, so it must agree with a
// containment check on the network addresses.
func TestOverlapMatchesContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		for _, family := range []Family{IPv4, IPv6} {
			a1, p1 := randomPrefix(rng, family)
			a2, p2 := randomPrefix(rng, family)
			x, err := PrefixFrom(a1, p1)
			require.NoError(t, err)
			y, err := PrefixFrom(a2, p2)
			require.NoError(t, err)

			want := x.Contains(y.Network()) || y.Contains(x.Network())
			require.Equal(t, want, x.Overlaps(y), "%s vs %s", x, y)
		}
	}
}

func TestOverlapsPanicsOnInvalidPrefix(t *testing.T) {
	v4 := MustParseAddress("10.0.0.0")
	v6 := MustParseAddress("2001:db8::")

	require.Panics(t, func() { Overlaps(v4, 33, v4, 8) })
	require.Panics(t, func() { Overlaps(v4, 8, v6, 129) })
	require.Panics(t, func() { Overlaps(v4, -1, v4, 8) })
	require.Panics(t, func() { Overlaps(Address{}, 0, v4, 0) })
}

func TestRelationOf(t *testing.T) {
	cases := []struct {
		a, b string
		want Relation
	}{
		{"192.168.0.0/16", "192.168.1.0/24", Contains},
		{"192.168.1.0/24", "192.168.0.0/16", ContainedBy},
		{"192.168.1.5/24", "192.168.1.200/24", Equal},
		{"192.168.1.0/25", "192.168.1.128/25", Disjoint},
		{"2001:db8::/32", "2001:db8:1::/48", Contains},
		{"10.0.0.0/8", "::/0", Disjoint},
	}

	for _, tc := range cases {
		got := RelationOf(MustParseCIDR(tc.a), MustParseCIDR(tc.b))
		require.Equal(t, tc.want, got, "%s vs %s", tc.a, tc.b)
		require.Equal(t, tc.want != Disjoint, got.Overlapping())
	}
}

func TestRelationIsMirrored(t *testing.T) {
	mirror := map[Relation]Relation{
		Disjoint:    Disjoint,
		Equal:       Equal,
		Contains:    ContainedBy,
		ContainedBy: Contains,
	}

	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 1000; i++ {
		a1, p1 := randomPrefix(rng, IPv4)
		a2, p2 := randomPrefix(rng, IPv4)
		x, _ := PrefixFrom(a1, p1)
		y, _ := PrefixFrom(a2, p2)
		require.Equal(t, mirror[RelationOf(x, y)], RelationOf(y, x))
	}
}
