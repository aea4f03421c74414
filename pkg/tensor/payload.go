package tensor

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Payload is the wire form of a request input. It exists only at the
// HTTP boundary and is never constructed by the caller.
type Payload struct {
	Name     string `json:"name"`
	Shape    []int  `json:"shape"`
	Datatype string `json:"datatype"`
	Data     any    `json:"data"`
}

// OutputPayload is the wire form of a response output. The data field
// is kept raw until decoded.
type OutputPayload struct {
	Name     string          `json:"name"`
	Shape    []int           `json:"shape"`
	Datatype string          `json:"datatype"`
	Data     json.RawMessage `json:"data"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Encode converts an input tensor into its wire payload. This is a
// total function: every variant maps to a payload, with the raw
// variant carrying the sentinel tag. The shape is copied so the
// payload does not alias the caller's slice.
func Encode(in *Input) *Payload {
	var data any
	switch v := in.Data.(type) {
	case Bool:
		data = []bool(v)
	case Uint8:
		// keep the named type so elements marshal as an array
		data = v
	case Uint16:
		data = []uint16(v)
	case Uint64:
		data = []uint64(v)
	case Int8:
		data = []int8(v)
	case Int16:
		data = []int16(v)
	case Int32:
		data = []int32(v)
	case Int64:
		data = []int64(v)
	case Float32:
		data = []float32(v)
	case Float64:
		data = []float64(v)
	case String:
		data = []string(v)
	case BFloat16:
		data = []uint16(v)
	case Raw:
		data = json.RawMessage(v)
	}
	return &Payload{
		Name:     in.Name,
		Shape:    append([]int(nil), in.Shape...),
		Datatype: in.Data.Datatype(),
		Data:     data,
	}
}

// MarshalJSON emits the raw variant as its wire value, unchanged.
func (v Raw) MarshalJSON() ([]byte, error) {
	return json.RawMessage(v).MarshalJSON()
}

// MarshalJSON emits UINT8 elements as a JSON array, rather than the
// base64 string encoding/json uses for byte slices.
func (v Uint8) MarshalJSON() ([]byte, error) {
	out := make([]uint64, len(v))
	for i, el := range v {
		out[i] = uint64(el)
	}
	return json.Marshal(out)
}
