/*
rest implements a client for an inference server's v2 REST protocol
https://github.com/triton-inference-server/server/blob/main/docs/protocol/README.md
*/
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	// Packages
	triton "github.com/mutablelogic/go-triton"
	otel "go.opentelemetry.io/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	base  *url.URL
	http  *http.Client
	agent string
}

var _ triton.Inferrer = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultTimeout  = 5 * time.Second
	pathHealthReady = "v2/health/ready"
)

var (
	tracer = otel.Tracer("github.com/mutablelogic/go-triton/pkg/rest")
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for an inference server endpoint, which should
// be something like "http://localhost:8000". The transport carries a
// bounded per-request timeout; use OptTimeout to change the bound.
func New(endpoint string, opts ...ClientOpt) (*Client, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, triton.ErrBadParameter.With(err)
	} else if base.Scheme != "http" && base.Scheme != "https" {
		return nil, triton.ErrBadParameter.Withf("unsupported endpoint %q", endpoint)
	}

	// Create client
	client := &Client{
		base: base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	// Return the client
	return client, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do issues one request and reads the whole response. It returns the
// status code and body; the error is non-nil only when no response
// was received at all. An unreadable body is returned as nil. At most
// one attempt is made, there are no retries.
func (client *Client) do(ctx context.Context, method string, body any, path ...string) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, triton.ErrBadParameter.With(err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, client.base.JoinPath(path...).String(), reqBody)
	if err != nil {
		return 0, nil, triton.ErrBadParameter.With(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if client.agent != "" {
		req.Header.Set("User-Agent", client.agent)
	}

	resp, err := client.http.Do(req)
	if err != nil {
		return 0, nil, triton.ErrHTTP.With(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		respBody = nil
	}
	return resp.StatusCode, respBody, nil
}

func successful(status int) bool {
	return status >= 200 && status < 300
}
