package middleware

import (
	"net"
	"net/http"
	"strings"
)

// TrustedHost rejects requests whose Host header is not in the allowlist,
// guarding against HTTP Host header attacks. An empty allowlist or a "*"
// entry accepts every host. Entries with a leading "*." match any
// subdomain, so "*.example.com" accepts "api.example.com" but not
// "example.com" itself.
func TrustedHost(allowed []string) func(http.Handler) http.Handler {
	allowAll := len(allowed) == 0
	for _, h := range allowed {
		if h == "*" {
			allowAll = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowAll || hostAllowed(r.Host, allowed) {
				next.ServeHTTP(w, r)
				return
			}
			respondError(w, http.StatusBadRequest, "invalid host header")
		})
	}
}

func hostAllowed(host string, allowed []string) bool {
	// The Host header may carry a port; compare on the name only.
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)

	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		if host == pattern {
			return true
		}
		if suffix, ok := strings.CutPrefix(pattern, "*."); ok && strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}
