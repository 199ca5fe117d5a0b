package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited routes are never rate limited
var unlimited = map[string]bool{
	"/health": true,
	"/":       true,
}

// unlimitedEndpoint is returned for routes exempt from limiting
var unlimitedEndpoint = EndpointConfig{}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Exact matches win over prefix matches. It returns nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && unlimited[path] {
		return &unlimitedEndpoint
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
