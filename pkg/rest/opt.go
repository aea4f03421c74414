package rest

import (
	"net/http"
	"time"

	// Packages
	triton "github.com/mutablelogic/go-triton"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A ClientOpt sets an option on the client at construction time
type ClientOpt func(*Client) error

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OptTimeout sets the per-request transport timeout. There is no
// per-call timeout; callers needing a different bound reconfigure the
// client.
func OptTimeout(timeout time.Duration) ClientOpt {
	return func(client *Client) error {
		if timeout <= 0 {
			return triton.ErrBadParameter.With("timeout")
		}
		client.http.Timeout = timeout
		return nil
	}
}

// OptHTTPClient replaces the underlying transport, for callers which
// manage pooling or TLS themselves.
func OptHTTPClient(http *http.Client) ClientOpt {
	return func(client *Client) error {
		if http == nil {
			return triton.ErrBadParameter.With("http client")
		}
		client.http = http
		return nil
	}
}

// OptUserAgent sets the User-Agent header on requests
func OptUserAgent(agent string) ClientOpt {
	return func(client *Client) error {
		client.agent = agent
		return nil
	}
}
