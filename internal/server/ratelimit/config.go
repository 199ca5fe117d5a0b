package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig is the limit for one route. A Path ending in "/" matches
// every path under it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // bucket capacity, Limit when 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // buckets unused this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns an enabled limiter configuration with the default
// endpoint limits
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits. Document uploads and
// exports cost the most; health and index routes are never limited.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/v1/parse", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/v1/parse/text", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/v1/score", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "/api/v1/export", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/v1/results/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// ParseIPList parses a comma-separated list of IP addresses into a set.
func ParseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
