package app

import (
	"net/url"
	"strings"
)

// originAllowlist decides which browser origins may call the API.
// Patterns come from allowed_origins in the config: exact "host[:port]"
// entries, "*.domain" suffix wildcards, or "host:*" to cover any port.
type originAllowlist struct {
	exact    map[string]struct{}
	suffixes []string
	prefixes []string
}

func newOriginAllowlist(patterns []string) *originAllowlist {
	l := &originAllowlist{exact: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		switch {
		case strings.HasPrefix(p, "*."):
			l.suffixes = append(l.suffixes, p[1:])
		case strings.HasSuffix(p, ":*"):
			l.prefixes = append(l.prefixes, p[:len(p)-1])
		default:
			l.exact[p] = struct{}{}
		}
	}
	return l
}

// Allows reports whether the given Origin header value matches the
// allowlist. Matching runs on the host[:port] portion only, so entries
// work regardless of scheme.
func (l *originAllowlist) Allows(origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}

	if _, ok := l.exact[host]; ok {
		return true
	}
	for _, suffix := range l.suffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	for _, prefix := range l.prefixes {
		if strings.HasPrefix(host, prefix) {
			return true
		}
	}
	return false
}
