package rest

import (
	"context"
	"fmt"
	"net/http"

	// Packages
	triton "github.com/mutablelogic/go-triton"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsServerLive checks the server's readiness endpoint. A non-2xx
// response is treated as an error carrying the status code and body,
// not as a false return: liveness failure and transport failure stay
// distinguishable through the error chain.
func (client *Client) IsServerLive(ctx context.Context) (bool, error) {
	ctx, span := tracer.Start(ctx, "IsServerLive", trace.WithAttributes(
		attribute.String("endpoint", client.base.String()),
	))
	defer span.End()

	status, body, err := client.do(ctx, http.MethodGet, nil, pathHealthReady)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	if !successful(status) {
		text := "No response body"
		if body != nil {
			text = string(body)
		}
		err := &triton.StatusError{
			StatusCode: status,
			Message:    fmt.Sprintf("server is dead or unhealthy. Status: %d. Response body: %s", status, text),
		}
		span.RecordError(err)
		return false, err
	}
	return true, nil
}
