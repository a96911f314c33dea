// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is an outbound JSON client over resty. The embedded
// *resty.Client exposes the full request API.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures a client built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the root every relative request path is resolved
// against. A trailing slash is dropped.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithTimeout bounds every request. Zero leaves the client unbounded.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithBearerToken sends token in the Authorization header. An empty token
// is ignored.
func WithBearerToken(token string) HTTPClientOption {
	return func(c *resty.Client) {
		if token != "" {
			c.SetAuthToken(token)
		}
	}
}

// NewHTTPClient returns an independent client that sends and accepts JSON.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://graph.facebook.com/v18.0"))
//	resp, err := client.R().SetBody(payload).Post("/123/messages")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
