// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP client initialization and
// non-authoritative JWT inspection.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding *resty.Client exposes the full
// resty API while leaving room for application-specific additions.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured resty
// client. Each call returns an independent instance with its own connection
// pool and state; callers set the base URL and timeout on the result.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
