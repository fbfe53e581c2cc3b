package server

import (
	"sort"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKeys maps subscriber services to their API keys as comma-separated
	// serviceID:key pairs (e.g. "svc-newsletter:s3cr3t,svc-alerts:t0k3n").
	ApiKeys string `mapstructure:"api_keys" default:""`
	// RateRPS is the sustained request rate allowed per service.
	RateRPS float64 `mapstructure:"rate_rps" default:"5"`
	// RateBurst is the burst allowance per service.
	RateBurst int `mapstructure:"rate_burst" default:"10"`
}

// ServiceKeys parses ApiKeys into a key -> service ID lookup for the auth
// middleware. Malformed or empty pairs are skipped.
func (c Config) ServiceKeys() map[string]string {
	keys := make(map[string]string)
	for _, pair := range strings.Split(c.ApiKeys, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		serviceID, key, ok := strings.Cut(pair, ":")
		serviceID = strings.TrimSpace(serviceID)
		key = strings.TrimSpace(key)
		if !ok || serviceID == "" || key == "" {
			continue
		}
		keys[key] = serviceID
	}
	return keys
}

// ServiceIDs returns the identifiers of every configured service, sorted
// for deterministic iteration.
func (c Config) ServiceIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, serviceID := range c.ServiceKeys() {
		if seen[serviceID] {
			continue
		}
		seen[serviceID] = true
		ids = append(ids, serviceID)
	}
	sort.Strings(ids)
	return ids
}
