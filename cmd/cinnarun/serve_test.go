package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"[::]:2222", "ssh localhost -p 2222"},
		{"example.com:2022", "ssh example.com -p 2022"},
		{"10.0.0.5:22", "ssh 10.0.0.5"},
		{"bad-address", "ssh bad-address"},
	}

	for _, tc := range tests {
		t.Run(tc.addr, func(t *testing.T) {
			if got := connectHint(tc.addr); got != tc.expected {
				t.Errorf("connectHint(%q) = %q, expected %q", tc.addr, got, tc.expected)
			}
		})
	}
}
