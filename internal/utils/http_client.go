// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys for request-scoped
// values and HTTP client initialization.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose
// underlying resty.Client is rooted at baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.intra.42.fr/v2")
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("/me")
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{Client: resty.New().SetBaseURL(baseURL)}
}
