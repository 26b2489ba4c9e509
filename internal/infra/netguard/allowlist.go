// Package netguard decides whether a client address may reach protected routes.
package netguard

import (
	"encoding/binary"
	"net/netip"
	"strconv"
	"strings"

	"folio/config"
)

const ipv4MappedPrefix = "::ffff:"

// AllowList holds the parsed admin allow-list entries.
type AllowList struct {
	entries []string
}

// NewAllowList builds the allow-list from configuration.
func NewAllowList(cfg *config.Config) *AllowList {
	if cfg.Security == nil {
		return Parse("")
	}

	return Parse(cfg.Security.AdminAllowList)
}

// Parse splits a comma separated list of addresses and CIDR blocks.
func Parse(raw string) *AllowList {
	list := &AllowList{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			list.entries = append(list.entries, entry)
		}
	}

	return list
}

// Configured reports whether any entry exists. An empty list denies everything.
func (l *AllowList) Configured() bool {
	return len(l.entries) > 0
}

// Entries returns the configured entries.
func (l *AllowList) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Allows reports whether ip matches any entry.
func (l *AllowList) Allows(ip string) bool {
	ip = NormalizeIP(ip)
	if ip == "" {
		return false
	}

	for _, entry := range l.entries {
		if matchEntry(ip, entry) {
			return true
		}
	}

	return false
}

// NormalizeIP strips the IPv4-mapped IPv6 prefix.
func NormalizeIP(ip string) string {
	ip = strings.TrimSpace(ip)
	if len(ip) > len(ipv4MappedPrefix) && strings.EqualFold(ip[:len(ipv4MappedPrefix)], ipv4MappedPrefix) {
		return ip[len(ipv4MappedPrefix):]
	}

	return ip
}

func matchEntry(ip, entry string) bool {
	if ip == entry {
		return true
	}

	network, bitsText, isCIDR := strings.Cut(entry, "/")
	if !isCIDR {
		return false
	}

	// IPv6 ranges are matched on the literal network text, so the prefix
	// length is ignored and "2001:db8::" never matches "2001:db80::1".
	if strings.Contains(entry, ":") {
		return strings.HasPrefix(ip, network)
	}

	bits, err := strconv.Atoi(bitsText)
	if err != nil || bits < 0 || bits > 32 {
		return false
	}

	ipValue, ok := ipv4ToUint32(ip)
	if !ok {
		return false
	}
	networkValue, ok := ipv4ToUint32(network)
	if !ok {
		return false
	}

	var mask uint32
	if bits > 0 {
		mask = ^uint32(0) << (32 - bits)
	}

	return ipValue&mask == networkValue&mask
}

func ipv4ToUint32(s string) (uint32, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return 0, false
	}
	octets := addr.As4()

	return binary.BigEndian.Uint32(octets[:]), true
}
