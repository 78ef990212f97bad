// Package geo resolves a human-readable location for a form submission.
// Resolution is a fixed three-tier fallback: browser-style coordinates
// reverse-geocoded to a place name, then an IP-based lookup, then the
// literal "Unknown location".
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// UnknownLocation is the value used when every lookup tier fails.
const UnknownLocation = "Unknown location"

// Default endpoints. Both are keyless public APIs.
const (
	reverseGeocodeEndpoint = "https://api.bigdatacloud.net/data/reverse-geocode-client"
	ipLookupEndpoint       = "http://ip-api.com/json/"
)

// Coords is a latitude/longitude pair supplied by the caller.
type Coords struct {
	Lat float64
	Lon float64
}

// Resolver performs the lookups. The zero value is not usable; use NewResolver.
type Resolver struct {
	reverseURL string
	ipURL      string
	httpClient *http.Client
}

// NewResolver creates a Resolver using the public endpoints.
func NewResolver() *Resolver {
	return &Resolver{
		reverseURL: reverseGeocodeEndpoint,
		ipURL:      ipLookupEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve returns a place name. coords may be nil (no permission or no
// geolocation support), in which case the IP tier is tried directly.
// Each tier gets exactly one attempt. Resolve never returns an error:
// the final fallback is the UnknownLocation literal.
func (r *Resolver) Resolve(ctx context.Context, coords *Coords) string {
	if coords != nil {
		if place, err := r.ReverseGeocode(ctx, coords.Lat, coords.Lon); err == nil {
			return place
		} else {
			slog.Debug("reverse geocode failed, falling back to IP lookup", "error", err)
		}
	}

	if place, err := r.LookupIP(ctx); err == nil {
		return place
	} else {
		slog.Debug("IP lookup failed, using unknown location", "error", err)
	}

	return UnknownLocation
}

// ReverseGeocode resolves coordinates to "City, Country".
func (r *Resolver) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&localityLanguage=en", r.reverseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: reverse geocode status %d", resp.StatusCode)
	}

	var result struct {
		City        string `json:"city"`
		Locality    string `json:"locality"`
		CountryName string `json:"countryName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	city := result.City
	if city == "" {
		city = result.Locality
	}
	place := joinPlace(city, result.CountryName)
	if place == "" {
		return "", fmt.Errorf("geo: empty reverse geocode result")
	}
	return place, nil
}

// LookupIP resolves the caller's public IP to "City, Country".
func (r *Resolver) LookupIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.ipURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: ip lookup status %d", resp.StatusCode)
	}

	var result struct {
		Status  string `json:"status"`
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Status != "success" {
		return "", fmt.Errorf("geo: ip lookup status %q", result.Status)
	}

	place := joinPlace(result.City, result.Country)
	if place == "" {
		return "", fmt.Errorf("geo: empty ip lookup result")
	}
	return place, nil
}

func joinPlace(city, country string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
