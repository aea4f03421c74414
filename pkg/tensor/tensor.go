/*
tensor implements the typed tensor data model for the inference
protocol: a named, shaped, homogeneously-typed flat sequence of
elements, together with the codec which converts tensors to and from
their wire payloads.
*/
package tensor

import (
	"encoding/json"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Data is the closed set of element sequences a tensor may hold.
// Exactly one variant exists per supported element kind, plus Raw as
// an escape hatch for wire values with an unrecognized type-tag.
type Data interface {
	// Return the wire type-tag for this element kind
	Datatype() string

	// Return the number of elements
	Elements() int

	sealed()
}

type (
	Bool     []bool
	Uint8    []uint8
	Uint16   []uint16
	Uint64   []uint64
	Int8     []int8
	Int16    []int16
	Int32    []int32
	Int64    []int64
	Float32  []float32
	Float64  []float64
	String   []string
	BFloat16 []uint16 // raw 16-bit storage
	Raw      json.RawMessage
)

// Input is a named, shaped tensor submitted for inference. The shape
// is trusted from the caller: its product is expected to equal the
// element count, but this is not enforced on construction. Use
// Validate for an explicit check, or FromTensor to derive the shape
// from a source array.
type Input struct {
	Name  string
	Shape []int
	Data  Data
}

// Output is a named, shaped tensor returned from inference, with the
// type-tag string as returned by the server, which may differ from
// any input tag when the server extends the protocol.
type Output struct {
	Name     string `json:"name"`
	Datatype string `json:"datatype"`
	Shape    []int  `json:"shape"`
	Data     Data   `json:"data"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TypeBool     = "BOOL"
	TypeUint8    = "UINT8"
	TypeUint16   = "UINT16"
	TypeUint64   = "UINT64"
	TypeInt8     = "INT8"
	TypeInt16    = "INT16"
	TypeInt32    = "INT32"
	TypeInt64    = "INT64"
	TypeFloat32  = "FP32"
	TypeFloat64  = "FP64"
	TypeString   = "STRING"
	TypeBFloat16 = "BF16"

	// Sentinel tag produced when encoding the raw variant
	typeRaw = "none"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInput returns an input tensor with the given name, shape and
// element data.
func NewInput(name string, shape []int, data Data) *Input {
	return &Input{
		Name:  name,
		Shape: shape,
		Data:  data,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (Bool) Datatype() string     { return TypeBool }
func (Uint8) Datatype() string    { return TypeUint8 }
func (Uint16) Datatype() string   { return TypeUint16 }
func (Uint64) Datatype() string   { return TypeUint64 }
func (Int8) Datatype() string     { return TypeInt8 }
func (Int16) Datatype() string    { return TypeInt16 }
func (Int32) Datatype() string    { return TypeInt32 }
func (Int64) Datatype() string    { return TypeInt64 }
func (Float32) Datatype() string  { return TypeFloat32 }
func (Float64) Datatype() string  { return TypeFloat64 }
func (String) Datatype() string   { return TypeString }
func (BFloat16) Datatype() string { return TypeBFloat16 }
func (Raw) Datatype() string      { return typeRaw }

func (v Bool) Elements() int     { return len(v) }
func (v Uint8) Elements() int    { return len(v) }
func (v Uint16) Elements() int   { return len(v) }
func (v Uint64) Elements() int   { return len(v) }
func (v Int8) Elements() int     { return len(v) }
func (v Int16) Elements() int    { return len(v) }
func (v Int32) Elements() int    { return len(v) }
func (v Int64) Elements() int    { return len(v) }
func (v Float32) Elements() int  { return len(v) }
func (v Float64) Elements() int  { return len(v) }
func (v String) Elements() int   { return len(v) }
func (v BFloat16) Elements() int { return len(v) }

// The raw variant is an opaque wire value, not an element sequence
func (Raw) Elements() int { return 0 }

// Validate returns an error when the product of the shape does not
// equal the element count, or the name is empty. The raw variant is
// always valid for any shape.
func (in *Input) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("input has no name")
	}
	if in.Data == nil {
		return fmt.Errorf("input %q has no data", in.Name)
	}
	if _, ok := in.Data.(Raw); ok {
		return nil
	}
	if n := numElements(in.Shape); n != in.Data.Elements() {
		return fmt.Errorf("input %q: shape %v implies %d elements, have %d", in.Name, in.Shape, n, in.Data.Elements())
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (Bool) sealed()     {}
func (Uint8) sealed()    {}
func (Uint16) sealed()   {}
func (Uint64) sealed()   {}
func (Int8) sealed()     {}
func (Int16) sealed()    {}
func (Int32) sealed()    {}
func (Int64) sealed()    {}
func (Float32) sealed()  {}
func (Float64) sealed()  {}
func (String) sealed()   {}
func (BFloat16) sealed() {}
func (Raw) sealed()      {}

// numElements returns the product of the shape dimensions. An empty
// shape denotes a scalar.
func numElements(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}
