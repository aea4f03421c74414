package triton

import (
	"context"

	// Packages
	tensor "github.com/mutablelogic/go-triton/pkg/tensor"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps the basic liveness check for an
// inference server. It is implemented by the REST client; a client for
// a different transport would be a sibling implementation.
type Client interface {
	// Return true if the server is live and ready to accept requests
	IsServerLive(context.Context) (bool, error)
}

// Inferrer is a client which can run inference requests against a
// named model.
type Inferrer interface {
	Client

	// Run a single inference request with the given input tensors,
	// returning the decoded output tensors
	Infer(context.Context, []tensor.Input, string) (*Results, error)
}

// Results are the decoded outputs of one inference request. A result
// is constructed fresh for each call and owned by the caller.
type Results struct {
	// Request identifier echoed by the server, if any
	ID string `json:"id,omitempty"`

	// Decoded output tensors, in server order. Outputs which could
	// not be decoded are omitted, so this may be shorter than the
	// list returned by the server.
	Outputs []tensor.Output `json:"outputs"`
}
