package ipcalc

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestParseCIDR(t *testing.T) {
	cases := []struct {
		input string
		addr  string
		bits  int
	}{
		{"192.168.1.0/24", "192.168.1.0", 24},
		{"192.168.1.77/24", "192.168.1.77", 24},
		{"0.0.0.0/0", "0.0.0.0", 0},
		{"10.1.2.3/32", "10.1.2.3", 32},
		{"2001:db8::/32", "2001:db8::", 32},
		{"::/0", "::", 0},
		{"2001:db8::1/128", "2001:db8::1", 128},
		{"10.0.0.0/08", "10.0.0.0", 8},
		{"192.168.1.0/+8", "192.168.1.0", 8},
		{"2001:db8::/+128", "2001:db8::", 128},
	}

	for _, tc := range cases {
		p, err := ParseCIDR(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.addr, p.Addr().String(), tc.input)
		require.Equal(t, tc.bits, p.Bits(), tc.input)
	}
}

func TestParseCIDRErrors(t *testing.T) {
	cases := []struct {
		input         string
		invalidFormat bool
		reason        string
	}{
		{"192.168.1.0", false, "exactly one '/'"},
		{"192.168.1.0/24/8", false, "exactly one '/'"},
		{"", false, "exactly one '/'"},
		{"192.168.1.0/33", false, "prefix length 33 exceeds 32 for IPv4 address"},
		{"2001:db8::/129", false, "prefix length 129 exceeds 128 for IPv6 address"},
		{"192.168.1.0/-1", false, "not a non-negative integer"},
		{"192.168.1.0/+", false, "not a non-negative integer"},
		{"192.168.1.0/++8", false, "not a non-negative integer"},
		{"192.168.1.0/+-8", false, "not a non-negative integer"},
		{"192.168.1.0/+33", false, "prefix length +33 exceeds 32 for IPv4 address"},
		{"192.168.1.0/", false, "not a non-negative integer"},
		{"192.168.1.0/abc", false, "not a non-negative integer"},
		{"192.168.1.0/256", false, "prefix length 256 exceeds 32 for IPv4 address"},
		{"192.168.1.0/ 24", false, "not a non-negative integer"},
		{"not-an-ip/24", true, "invalid IP address format: not-an-ip"},
		{"/24", true, "invalid IP address format"},
		{"300.1.1.1/8", true, "invalid IP address format: 300.1.1.1"},
	}

	for _, tc := range cases {
		_, err := ParseCIDR(tc.input)
		require.Error(t, err, tc.input)
		require.True(t, errors.Is(err, ErrInvalidCIDR), "%q: %v", tc.input, err)
		require.Equal(t, tc.invalidFormat, errors.Is(err, ErrInvalidFormat), tc.input)
		require.Contains(t, err.Error(), "invalid CIDR notation: "+tc.input, tc.input)
		require.Contains(t, err.Error(), tc.reason, tc.input)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		require.Equal(t, tc.input, perr.Input)
	}
}

func TestPrefixFrom(t *testing.T) {
	addr := MustParseAddress("192.0.2.1")

	p, err := PrefixFrom(addr, 24)
	require.NoError(t, err)
	require.Equal(t, "192.0.2.1/24", p.String())

	_, err = PrefixFrom(addr, 33)
	require.ErrorIs(t, err, ErrInvalidCIDR)

	_, err = PrefixFrom(addr, -1)
	require.ErrorIs(t, err, ErrInvalidCIDR)

	_, err = PrefixFrom(Address{}, 0)
	require.ErrorIs(t, err, ErrInvalidCIDR)

	_, err = PrefixFrom(MustParseAddress("::"), 128)
	require.NoError(t, err)
}

func TestPrefixStringRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		v4 := AddrFrom4(rng.Uint32())
		bits := rng.Intn(33)
		p, err := PrefixFrom(v4, bits)
		require.NoError(t, err)

		parsed, err := ParseCIDR(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)

		v6 := AddrFrom16(uint128.New(rng.Uint64(), rng.Uint64()))
		bits = rng.Intn(129)
		p, err = PrefixFrom(v6, bits)
		require.NoError(t, err)

		parsed, err = ParseCIDR(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}
}

func TestPrefixContains(t *testing.T) {
	p := MustParseCIDR("192.168.1.77/24")

	require.True(t, p.Contains(MustParseAddress("192.168.1.0")))
	require.True(t, p.Contains(MustParseAddress("192.168.1.255")))
	require.False(t, p.Contains(MustParseAddress("192.168.2.0")))
	require.False(t, p.Contains(MustParseAddress("::ffff:192.168.1.1")))
}

func TestPrefixMasked(t *testing.T) {
	cases := map[string]string{
		"192.168.1.77/24":    "192.168.1.0/24",
		"10.255.255.255/0":   "0.0.0.0/0",
		"10.1.2.3/32":        "10.1.2.3/32",
		"2001:db8:1:2::7/48": "2001:db8:1::/48",
		"ffff::1/1":          "8000::/1",
	}

	for input, want := range cases {
		got := MustParseCIDR(input).Masked()
		require.Equal(t, want, got.String(), input)
		require.Equal(t, got.Addr(), MustParseCIDR(input).Network(), input)
	}
}

func TestPrefixNetIPPrefixMatchesStdlib(t *testing.T) {
	for _, input := range []string{"192.168.1.77/24", "2001:db8::1/33", "0.0.0.0/0"} {
		p := MustParseCIDR(input)
		want := p.NetIPPrefix().Masked()

		got, ok := AddrFromNetIP(want.Addr())
		require.True(t, ok)
		require.Equal(t, p.Network(), got, input)
		require.Equal(t, p.Bits(), want.Bits(), input)
	}
}

func ExampleParseCIDR() {
	p, err := ParseCIDR("192.168.1.77/24")
	if err != nil {
		panic(err)
	}
	fmt.Println(p, p.Masked())
	// Output: 192.168.1.77/24 192.168.1.0/24
}
