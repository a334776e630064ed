package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single lookup. A slow geolocation provider must
// never hold up the click being recorded.
const DefaultTimeout = 5 * time.Second

// Location is the best-effort result of an IP lookup. Either field may be
// empty when the provider does not know, or when the lookup failed.
type Location struct {
	City    string
	Country string
}

// Resolver resolves client IPs to a city/country pair via an external
// HTTP lookup service (ipapi.co contract: GET {base}/{ip}/json/ returning
// at least city and country_name).
type Resolver struct {
	baseURL string
	client  *http.Client
}

// NewResolver creates a resolver against the given API base URL.
// A non-positive timeout falls back to DefaultTimeout.
func NewResolver(baseURL string, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// lookupResponse is the subset of the provider payload we care about.
type lookupResponse struct {
	City        string `json:"city"`
	CountryName string `json:"country_name"`
}

// Resolve looks up the location for an IP. Local traffic (missing IP,
// loopback) short-circuits without a network call. Failures of any kind
// degrade to an empty Location; enrichment must never fail the recording
// operation it supports, so errors are logged and swallowed here.
func (r *Resolver) Resolve(ctx context.Context, ip string) Location {
	if ip == "" || ip == "::1" || strings.HasPrefix(ip, "127.") {
		return Location{}
	}

	url := fmt.Sprintf("%s/%s/json/", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("geo: building lookup request for %s failed: %v", ip, err)
		return Location{}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("geo: lookup for %s failed: %v", ip, err)
		return Location{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geo: lookup for %s returned status %d", ip, resp.StatusCode)
		return Location{}
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("geo: decoding lookup response for %s failed: %v", ip, err)
		return Location{}
	}

	return Location{
		City:    payload.City,
		Country: payload.CountryName,
	}
}
