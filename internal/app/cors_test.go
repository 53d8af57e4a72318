package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowlist(t *testing.T) {
	allow := newOriginAllowlist([]string{
		"blog.example.com",
		"*.preview.example.com",
		"localhost:*",
	})

	cases := []struct {
		origin string
		want   bool
	}{
		{"https://blog.example.com", true},
		{"http://blog.example.com", true},
		{"https://pr-42.preview.example.com", true},
		{"http://localhost:3000", true},
		{"http://localhost:5173", true},
		{"https://evil.example.com", false},
		{"https://blog.example.com.attacker.net", false},
		{"https://example.com", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, allow.Allows(tc.origin), "origin %q", tc.origin)
	}
}
