package models

import "time"

// CachedLocation is one geocoded place kept to avoid repeated lookups.
// Name is stored trimmed and lowercased.
type CachedLocation struct {
	Name             string    `json:"name"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	FormattedAddress string    `json:"formattedAddress,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Address is the result of reverse geocoding a coordinate.
type Address struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}
