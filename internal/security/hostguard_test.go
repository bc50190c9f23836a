package security

import (
	"context"
	"errors"
	"net"
	"testing"

	"whoogle-mcp/internal/domain"
)

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip      string
		private bool
	}{
		{"10.0.0.1", true},
		{"10.255.255.255", true},
		{"172.16.0.1", true},
		{"172.31.255.254", true},
		{"172.32.0.1", false},
		{"192.168.1.1", true},
		{"127.0.0.1", true},
		{"169.254.169.254", true}, // cloud metadata endpoint
		{"0.0.0.0", true},
		{"::1", true},
		{"fc00::1", true},
		{"fe80::1", true},
		{"8.8.8.8", false},
		{"93.184.216.34", false},
		{"2606:4700::1111", false},
		{"::ffff:192.168.1.1", true}, // IPv4-mapped IPv6
		{"::ffff:8.8.8.8", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if ip == nil {
				t.Fatalf("bad test IP %q", tt.ip)
			}
			if got := IsPrivateIP(ip); got != tt.private {
				t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.private)
			}
		})
	}
}

func TestGuardedTransportBlocksPrivateAddress(t *testing.T) {
	transport := NewGuardedTransport()

	for _, addr := range []string{"127.0.0.1:80", "169.254.169.254:80", "[::1]:80"} {
		_, err := transport.DialContext(context.Background(), "tcp", addr)
		if err == nil {
			t.Errorf("dial to %s was not blocked", addr)
			continue
		}
		if !errors.Is(err, domain.ErrBlockedHost) {
			t.Errorf("dial to %s: err = %v, want ErrBlockedHost", addr, err)
		}
	}
}

func TestGuardedTransportBlocksLocalhostName(t *testing.T) {
	transport := NewGuardedTransport()

	_, err := transport.DialContext(context.Background(), "tcp", "localhost:80")
	if !errors.Is(err, domain.ErrBlockedHost) {
		t.Errorf("err = %v, want ErrBlockedHost", err)
	}
}

func TestGuardedTransportRejectsBadAddress(t *testing.T) {
	transport := NewGuardedTransport()

	_, err := transport.DialContext(context.Background(), "tcp", "no-port-here")
	if err == nil {
		t.Error("expected error for address without port")
	}
}
