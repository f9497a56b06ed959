package ipcalc

// Category is the informational class of an address.
type Category uint8

const (
	CategoryPublic Category = iota
	CategoryLoopback
	CategoryPrivate
	CategoryMulticast
	CategoryBroadcast
	// CategoryGeneric covers every IPv6 address that is neither loopback
	// nor multicast.
	CategoryGeneric
)

var (
	loopback4  = MustParseCIDR("127.0.0.0/8")
	multicast4 = MustParseCIDR("224.0.0.0/4")
	broadcast4 = MustParseAddress("255.255.255.255")
	private4   = []Prefix{
		MustParseCIDR("10.0.0.0/8"),
		MustParseCIDR("172.16.0.0/12"),
		MustParseCIDR("192.168.0.0/16"),
	}

	loopback6  = MustParseAddress("::1")
	multicast6 = MustParseCIDR("ff00::/8")
)

func (c Category) String() string {
	switch c {
	case CategoryPublic:
		return "public"
	case CategoryLoopback:
		return "loopback"
	case CategoryPrivate:
		return "private"
	case CategoryMulticast:
		return "multicast"
	case CategoryBroadcast:
		return "broadcast"
	case CategoryGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Classify maps an address to exactly one category. IPv4 checks run in the
// order loopback, private, multicast, broadcast; IPv6 checks loopback then
// multicast.
func Classify(addr Address) Category {
	if addr.Is4() {
		switch {
		case loopback4.Contains(addr):
			return CategoryLoopback
		case isPrivate4(addr):
			return CategoryPrivate
		case multicast4.Contains(addr):
			return CategoryMulticast
		case addr == broadcast4:
			return CategoryBroadcast
		default:
			return CategoryPublic
		}
	}

	switch {
	case addr == loopback6:
		return CategoryLoopback
	case multicast6.Contains(addr):
		return CategoryMulticast
	default:
		return CategoryGeneric
	}
}

func isPrivate4(addr Address) bool {
	for _, block := range private4 {
		if block.Contains(addr) {
			return true
		}
	}
	return false
}

// Describe returns a display label such as "IPv4 Private" or "IPv6 Loopback".
// Generic IPv6 addresses are labelled just "IPv6".
func Describe(addr Address) string {
	switch c := Classify(addr); c {
	case CategoryGeneric:
		return addr.family.String()
	case CategoryPublic:
		return addr.family.String() + " Public"
	case CategoryLoopback:
		return addr.family.String() + " Loopback"
	case CategoryPrivate:
		return addr.family.String() + " Private"
	case CategoryMulticast:
		return addr.family.String() + " Multicast"
	case CategoryBroadcast:
		return addr.family.String() + " Broadcast"
	default:
		return addr.family.String() + " " + c.String()
	}
}
