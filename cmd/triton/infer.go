package main

import (
	"encoding/json"
	"fmt"
	"os"

	// Packages
	tensor "github.com/mutablelogic/go-triton/pkg/tensor"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type InferCmd struct {
	Model string `arg:"" name:"model" help:"Model name"`
	File  string `name:"file" short:"f" required:"" type:"existingfile" help:"Tensor input file (YAML or JSON)"`
}

// inputFile describes the request inputs, e.g.
//
//	inputs:
//	  - name: input0
//	    datatype: FP32
//	    shape: [2, 2]
//	    data: [1.0, 2.0, 3.0, 4.0]
type inputFile struct {
	Inputs []inputSpec `yaml:"inputs"`
}

type inputSpec struct {
	Name     string `yaml:"name"`
	Datatype string `yaml:"datatype"`
	Shape    []int  `yaml:"shape"`
	Data     []any  `yaml:"data"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *InferCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	// Read the inputs
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	var file inputFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	if len(file.Inputs) == 0 {
		return fmt.Errorf("%s: no inputs", cmd.File)
	}
	inputs := make([]tensor.Input, 0, len(file.Inputs))
	for _, spec := range file.Inputs {
		input, err := spec.toInput()
		if err != nil {
			return err
		}
		if err := input.Validate(); err != nil {
			return err
		}
		inputs = append(inputs, *input)
	}

	// Run inference and print the outputs
	results, err := client.Infer(globals.ctx, inputs, cmd.Model)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toInput converts one file entry into a typed input tensor. Unlike
// the response decode path, malformed elements here are an error, not
// dropped: the caller wrote the file and should fix it.
func (spec inputSpec) toInput() (*tensor.Input, error) {
	var data tensor.Data
	switch spec.Datatype {
	case tensor.TypeBool:
		v, err := boolElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Bool(v)
	case tensor.TypeString:
		v, err := stringElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.String(v)
	case tensor.TypeFloat32:
		v, err := floatElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out := make([]float32, len(v))
		for i, el := range v {
			out[i] = float32(el)
		}
		data = tensor.Float32(out)
	case tensor.TypeFloat64:
		v, err := floatElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Float64(v)
	case tensor.TypeBFloat16:
		v, err := floatElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out := make([]float32, len(v))
		for i, el := range v {
			out[i] = float32(el)
		}
		data = tensor.BFloat16FromFloat32s(out)
	case tensor.TypeInt8:
		v, err := intElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out, err := narrowed[int8](v, spec.Datatype)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Int8(out)
	case tensor.TypeInt16:
		v, err := intElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out, err := narrowed[int16](v, spec.Datatype)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Int16(out)
	case tensor.TypeInt32:
		v, err := intElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out, err := narrowed[int32](v, spec.Datatype)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Int32(out)
	case tensor.TypeInt64:
		v, err := intElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Int64(v)
	case tensor.TypeUint8:
		v, err := uintElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out, err := narrowed[uint8](v, spec.Datatype)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Uint8(out)
	case tensor.TypeUint16:
		v, err := uintElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		out, err := narrowed[uint16](v, spec.Datatype)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Uint16(out)
	case tensor.TypeUint64:
		v, err := uintElements(spec.Data)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		data = tensor.Uint64(v)
	default:
		return nil, fmt.Errorf("input %q: unsupported datatype %q", spec.Name, spec.Datatype)
	}
	return tensor.NewInput(spec.Name, spec.Shape, data), nil
}

func boolElements(values []any) ([]bool, error) {
	out := make([]bool, 0, len(values))
	for i, el := range values {
		v, ok := el.(bool)
		if !ok {
			return nil, fmt.Errorf("element %d is not a boolean", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func stringElements(values []any) ([]string, error) {
	out := make([]string, 0, len(values))
	for i, el := range values {
		v, ok := el.(string)
		if !ok {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func floatElements(values []any) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for i, el := range values {
		switch v := el.(type) {
		case float64:
			out = append(out, v)
		case int:
			out = append(out, float64(v))
		default:
			return nil, fmt.Errorf("element %d is not a number", i)
		}
	}
	return out, nil
}

func intElements(values []any) ([]int64, error) {
	out := make([]int64, 0, len(values))
	for i, el := range values {
		v, ok := el.(int)
		if !ok {
			return nil, fmt.Errorf("element %d is not an integer", i)
		}
		out = append(out, int64(v))
	}
	return out, nil
}

func uintElements(values []any) ([]uint64, error) {
	out := make([]uint64, 0, len(values))
	for i, el := range values {
		v, ok := el.(int)
		if !ok || v < 0 {
			return nil, fmt.Errorf("element %d is not an unsigned integer", i)
		}
		out = append(out, uint64(v))
	}
	return out, nil
}

// narrowed converts base elements to the target width
func narrowed[T int8 | int16 | int32 | uint8 | uint16, B int64 | uint64](values []B, datatype string) ([]T, error) {
	out := make([]T, len(values))
	for i, v := range values {
		t := T(v)
		if B(t) != v {
			return nil, fmt.Errorf("element %d out of range for %s", i, datatype)
		}
		out[i] = t
	}
	return out, nil
}
