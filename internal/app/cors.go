package app

import (
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
)

// corsConfig allows any origin in development or when no origins are
// configured; otherwise only origins whose host matches a pattern.
func corsConfig(origins []string, dev bool) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"Content-Length", "Retry-After", "X-Request-Id"},
	}
	if dev || len(origins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return true }
		return cfg
	}
	patterns := append([]string(nil), origins...)
	cfg.AllowOriginFunc = func(origin string) bool {
		host := originHost(origin)
		for _, p := range patterns {
			if hostMatches(p, host) {
				return true
			}
		}
		return false
	}
	return cfg
}

// originHost returns "host[:port]" of an origin, or the input when it does
// not parse as a URL.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// hostMatches supports exact hosts, "*.example.com" subdomain patterns and
// "localhost:*" any-port patterns. Full origins are reduced to their host.
func hostMatches(pattern, host string) bool {
	pattern = originHost(pattern)
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
