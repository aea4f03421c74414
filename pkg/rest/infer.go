package rest

import (
	"context"
	"encoding/json"
	"net/http"

	// Packages
	uuid "github.com/google/uuid"
	triton "github.com/mutablelogic/go-triton"
	tensor "github.com/mutablelogic/go-triton/pkg/tensor"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type inferRequest struct {
	ID     string            `json:"id,omitempty"`
	Inputs []*tensor.Payload `json:"inputs"`
}

type inferResponse struct {
	ID      string                  `json:"id,omitempty"`
	Outputs []*tensor.OutputPayload `json:"outputs"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Infer runs one inference request against a named model. Inputs are
// encoded in caller order. Outputs which cannot be decoded are
// omitted from the results, so the result may hold fewer outputs than
// the server returned; callers needing strict completeness should
// compare against the expected output count themselves.
func (client *Client) Infer(ctx context.Context, inputs []tensor.Input, model string) (*triton.Results, error) {
	if model == "" {
		return nil, triton.ErrBadParameter.With("missing model name")
	}

	ctx, span := tracer.Start(ctx, "Infer", trace.WithAttributes(
		attribute.String("model", model),
		attribute.Int("inputs", len(inputs)),
	))
	defer span.End()

	// Encode the request
	request := inferRequest{
		ID:     uuid.NewString(),
		Inputs: make([]*tensor.Payload, 0, len(inputs)),
	}
	for i := range inputs {
		request.Inputs = append(request.Inputs, tensor.Encode(&inputs[i]))
	}

	status, body, err := client.do(ctx, http.MethodPost, request, "v2", "models", model, "infer")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !successful(status) {
		text := "Unknown error body"
		if body != nil {
			text = string(body)
		}
		err := triton.ErrInference.With(text)
		span.RecordError(err)
		return nil, err
	}

	// Decode the response envelope
	var response inferResponse
	if err := json.Unmarshal(body, &response); err != nil {
		err := triton.ErrParse.With(err)
		span.RecordError(err)
		return nil, err
	} else if response.Outputs == nil {
		err := triton.ErrParse.With("missing outputs")
		span.RecordError(err)
		return nil, err
	}

	// Decode each output, dropping any which yield nothing
	results := &triton.Results{
		ID:      response.ID,
		Outputs: make([]tensor.Output, 0, len(response.Outputs)),
	}
	for _, payload := range response.Outputs {
		data, ok := tensor.Decode(payload)
		if !ok {
			continue
		}
		results.Outputs = append(results.Outputs, tensor.Output{
			Name:     payload.Name,
			Datatype: payload.Datatype,
			Shape:    append([]int(nil), payload.Shape...),
			Data:     data,
		})
	}
	return results, nil
}
