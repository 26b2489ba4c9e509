package netguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList_IPv4CIDR(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		ip    string
		want  bool
	}{
		{"inside /24", "103.21.244.0/24", "103.21.244.50", true},
		{"outside /24", "103.21.245.0/24", "103.21.244.50", false},
		{"inside /22", "103.21.244.0/22", "103.21.247.255", true},
		{"outside /22", "103.21.244.0/22", "103.21.248.1", false},
		{"host bits in network", "10.1.2.3/8", "10.200.0.1", true},
		{"single host /32", "192.168.1.10/32", "192.168.1.10", true},
		{"single host /32 miss", "192.168.1.10/32", "192.168.1.11", false},
		{"match all /0", "0.0.0.0/0", "8.8.8.8", true},
		{"invalid prefix length", "10.0.0.0/33", "10.0.0.1", false},
		{"invalid network", "10.0.0/8", "10.0.0.1", false},
		{"IPv6 client against IPv4 range", "10.0.0.0/8", "2001:db8::1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.entry).Allows(tt.ip))
		})
	}
}

func TestAllowList_ExactMatch(t *testing.T) {
	list := Parse("127.0.0.1, ::1 ,203.0.113.7")

	assert.True(t, list.Allows("127.0.0.1"))
	assert.True(t, list.Allows("::1"))
	assert.True(t, list.Allows("203.0.113.7"))
	assert.False(t, list.Allows("203.0.113.8"))
	assert.Equal(t, []string{"127.0.0.1", "::1", "203.0.113.7"}, list.Entries())
}

func TestAllowList_NormalizesIPv4MappedAddresses(t *testing.T) {
	list := Parse("103.21.244.0/24,127.0.0.1")

	assert.True(t, list.Allows("::ffff:103.21.244.50"))
	assert.True(t, list.Allows("::FFFF:127.0.0.1"))
	assert.False(t, list.Allows("::ffff:103.21.245.50"))
}

func TestAllowList_IPv6PrefixMatch(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		ip    string
		want  bool
	}{
		{"network text prefix", "2001:db8::/32", "2001:db8::1", true},
		{"longer group with same leading digits", "2001:db8::/32", "2001:db80::1", false},
		{"other network", "2400:cb00::/32", "2606:4700::6810:1", false},
		{"full group prefix", "2400:cb00:2048::/48", "2400:cb00:2048::6810:1", true},
		{"expanded address is not rewritten", "2400:cb00::/32", "2400:cb00:2048:1::6810:1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.entry).Allows(tt.ip))
		})
	}
}

func TestAllowList_EmptyDeniesEverything(t *testing.T) {
	for _, raw := range []string{"", " ", ",,"} {
		list := Parse(raw)

		assert.False(t, list.Configured())
		assert.False(t, list.Allows("127.0.0.1"))
	}
}

func TestAllowList_EmptyClientAddress(t *testing.T) {
	assert.False(t, Parse("0.0.0.0/0").Allows(""))
}
