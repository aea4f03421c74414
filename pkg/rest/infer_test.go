package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	triton "github.com/mutablelogic/go-triton"
	rest "github.com/mutablelogic/go-triton/pkg/rest"
	tensor "github.com/mutablelogic/go-triton/pkg/tensor"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	errgroup "golang.org/x/sync/errgroup"
)

// wire shapes for the mock server
type wireTensor struct {
	Name     string `json:"name"`
	Shape    []int  `json:"shape"`
	Datatype string `json:"datatype"`
	Data     any    `json:"data"`
}

type wireRequest struct {
	ID     string       `json:"id"`
	Inputs []wireTensor `json:"inputs"`
}

func Test_infer_001(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/v2/models/squeeze/infer", r.URL.Path)

		var request wireRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.NotEmpty(request.ID)

		// Inputs arrive in caller order with the declared tags
		require.Len(t, request.Inputs, 2)
		assert.Equal("input0", request.Inputs[0].Name)
		assert.Equal("FP32", request.Inputs[0].Datatype)
		assert.Equal([]int{2, 2}, request.Inputs[0].Shape)
		assert.Equal("input1", request.Inputs[1].Name)
		assert.Equal("INT64", request.Inputs[1].Datatype)

		response := map[string]any{
			"id": request.ID,
			"outputs": []wireTensor{
				{Name: "output0", Shape: []int{2}, Datatype: "FP32", Data: []float64{1.5, 2.5}},
				{Name: "output1", Shape: []int{1}, Datatype: "STRING", Data: []string{"cat"}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client, err := rest.New(server.URL)
	require.NoError(t, err)

	results, err := client.Infer(context.Background(), []tensor.Input{
		*tensor.NewInput("input0", []int{2, 2}, tensor.Float32{1, 2, 3, 4}),
		*tensor.NewInput("input1", []int{1}, tensor.Int64{42}),
	}, "squeeze")
	require.NoError(t, err)
	assert.NotEmpty(results.ID)

	require.Len(t, results.Outputs, 2)
	assert.Equal("output0", results.Outputs[0].Name)
	assert.Equal("FP32", results.Outputs[0].Datatype)
	assert.Equal([]int{2}, results.Outputs[0].Shape)
	assert.Equal(tensor.Float32{1.5, 2.5}, results.Outputs[0].Data)
	assert.Equal("output1", results.Outputs[1].Name)
	assert.Equal(tensor.String{"cat"}, results.Outputs[1].Data)
}

func Test_infer_002(t *testing.T) {
	assert := assert.New(t)

	// A non-2xx inference response carries the body verbatim
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model not ready"))
	}))
	defer server.Close()

	client, err := rest.New(server.URL)
	require.NoError(t, err)

	_, err = client.Infer(context.Background(), []tensor.Input{
		*tensor.NewInput("in", []int{1}, tensor.Float32{1}),
	}, "squeeze")
	assert.ErrorIs(err, triton.ErrInference)
	assert.Contains(err.Error(), "model not ready")
}

func Test_infer_003(t *testing.T) {
	assert := assert.New(t)

	// A 2xx body without an outputs field does not parse
	for _, body := range []string{`{}`, `{"result":"ok"}`, `not json`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client, err := rest.New(server.URL)
		require.NoError(t, err)

		_, err = client.Infer(context.Background(), []tensor.Input{
			*tensor.NewInput("in", []int{1}, tensor.Float32{1}),
		}, "squeeze")
		assert.ErrorIs(err, triton.ErrParse, "body %q", body)
		server.Close()
	}
}

func Test_infer_004(t *testing.T) {
	assert := assert.New(t)

	// An output which cannot be decoded is omitted from the results;
	// an unrecognized tag is preserved as the raw variant
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"outputs":[
			{"name":"bad","shape":[],"datatype":"FP32","data":42},
			{"name":"good","shape":[1],"datatype":"INT32","data":[7]},
			{"name":"ext","shape":[2],"datatype":"FP8_E4M3","data":[0,1]}
		]}`))
	}))
	defer server.Close()

	client, err := rest.New(server.URL)
	require.NoError(t, err)

	results, err := client.Infer(context.Background(), []tensor.Input{
		*tensor.NewInput("in", []int{1}, tensor.Float32{1}),
	}, "squeeze")
	require.NoError(t, err)

	require.Len(t, results.Outputs, 2)
	assert.Equal("good", results.Outputs[0].Name)
	assert.Equal(tensor.Int32{7}, results.Outputs[0].Data)
	assert.Equal("ext", results.Outputs[1].Name)
	assert.Equal(tensor.Raw(`[0,1]`), results.Outputs[1].Data)
}

func Test_infer_005(t *testing.T) {
	assert := assert.New(t)

	// A missing model name is rejected before any request is made
	client, err := rest.New("http://localhost:8000")
	require.NoError(t, err)
	_, err = client.Infer(context.Background(), nil, "")
	assert.ErrorIs(err, triton.ErrBadParameter)
}

func Test_infer_006(t *testing.T) {
	assert := assert.New(t)

	// Concurrent calls on one client each receive their own paired
	// response: the server echoes the input name back as the output
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request wireRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Len(t, request.Inputs, 1)
		response := map[string]any{
			"id": request.ID,
			"outputs": []wireTensor{
				{Name: request.Inputs[0].Name, Shape: []int{1}, Datatype: "INT64", Data: request.Inputs[0].Data},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client, err := rest.New(server.URL)
	require.NoError(t, err)

	var group errgroup.Group
	for i := 0; i < 8; i++ {
		group.Go(func() error {
			name := fmt.Sprintf("tag%d", i)
			results, err := client.Infer(context.Background(), []tensor.Input{
				*tensor.NewInput(name, []int{1}, tensor.Int64{int64(i)}),
			}, "echo")
			if err != nil {
				return err
			}
			if len(results.Outputs) != 1 {
				return fmt.Errorf("%s: expected one output, got %d", name, len(results.Outputs))
			}
			if results.Outputs[0].Name != name {
				return fmt.Errorf("expected output %q, got %q", name, results.Outputs[0].Name)
			}
			if data, ok := results.Outputs[0].Data.(tensor.Int64); !ok || data[0] != int64(i) {
				return fmt.Errorf("%s: response data not paired with request", name)
			}
			return nil
		})
	}
	assert.NoError(group.Wait())
}
