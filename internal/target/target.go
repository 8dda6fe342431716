// Package target expands CIDR range descriptors into scannable host lists.
package target

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrInvalidRange is returned when a target descriptor cannot be parsed as
// an IPv4 network in CIDR notation.
var ErrInvalidRange = errors.New("invalid target range")

// Expand parses a CIDR descriptor and returns its usable host addresses in
// address order. Host bits set in the descriptor are masked away rather than
// rejected, so "192.168.1.5/30" scans the same block as "192.168.1.4/30".
// For prefixes of /30 and shorter the network and broadcast addresses are
// excluded; /31 and /32 blocks have no such reserved addresses and keep
// every address. Only IPv4 ranges are supported.
func Expand(cidr string) ([]string, error) {
	_, network, err := net.ParseCIDR(strings.TrimSpace(cidr))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, cidr)
	}
	ip := network.IP.To4()
	if ip == nil {
		return nil, fmt.Errorf("%w: %q is not an IPv4 network", ErrInvalidRange, cidr)
	}

	hosts := make([]string, 0)
	for addr := append(net.IP(nil), ip...); network.Contains(addr); incrementIP(addr) {
		hosts = append(hosts, addr.String())
	}

	if ones, _ := network.Mask.Size(); ones <= 30 && len(hosts) >= 2 {
		hosts = hosts[1 : len(hosts)-1]
	}
	return hosts, nil
}

// incrementIP advances an address in place with byte carry.
func incrementIP(ip net.IP) {
	for i := len(ip) - 1; i >= 0; i-- {
		ip[i]++
		if ip[i] != 0 {
			break
		}
	}
}
