package tensor

import (
	"bytes"
	"encoding/json"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode converts a wire output payload back into typed element data.
// The type-tag is matched case-sensitively against the known tags; an
// unrecognized tag always succeeds, yielding the raw variant wrapping
// the wire value unchanged. For known tags, elements which fail to
// parse as the expected base type, or fail the narrowing cast, are
// dropped; the second return value is false only when the data field
// is not a JSON array at all.
func Decode(payload *OutputPayload) (Data, bool) {
	switch payload.Datatype {
	case TypeBool, TypeUint8, TypeUint16, TypeUint64, TypeInt8, TypeInt16,
		TypeInt32, TypeInt64, TypeFloat32, TypeFloat64, TypeString, TypeBFloat16:
		arr, ok := elements(payload.Data)
		if !ok {
			return nil, false
		}
		return decodeElements(payload.Datatype, arr), true
	default:
		return Raw(append(json.RawMessage(nil), payload.Data...)), true
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeElements(datatype string, arr []any) Data {
	switch datatype {
	case TypeBool:
		return decodeBool(arr)
	case TypeUint8:
		return Uint8(decodeUint[uint8](arr))
	case TypeUint16:
		return Uint16(decodeUint[uint16](arr))
	case TypeUint64:
		return Uint64(decodeUint[uint64](arr))
	case TypeInt8:
		return Int8(decodeInt[int8](arr))
	case TypeInt16:
		return Int16(decodeInt[int16](arr))
	case TypeInt32:
		return Int32(decodeInt[int32](arr))
	case TypeInt64:
		return Int64(decodeInt[int64](arr))
	case TypeFloat32:
		return Float32(decodeFloat[float32](arr))
	case TypeFloat64:
		return Float64(decodeFloat[float64](arr))
	case TypeString:
		return decodeString(arr)
	case TypeBFloat16:
		// raw 16-bit storage travels as unsigned integers
		return BFloat16(decodeUint[uint16](arr))
	}
	return nil
}

// elements parses the data field as a JSON array, preserving numeric
// precision with json.Number.
func elements(data json.RawMessage) ([]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var arr []any
	if err := dec.Decode(&arr); err != nil {
		return nil, false
	}
	// a JSON null decodes without error but is not an array
	if arr == nil {
		return nil, false
	}
	return arr, true
}

func decodeFloat[T ~float32 | ~float64](arr []any) []T {
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		num, ok := el.(json.Number)
		if !ok {
			continue
		}
		base, err := num.Float64()
		if err != nil {
			continue
		}
		if v, ok := narrowFloat[T](base); ok {
			out = append(out, v)
		}
	}
	return out
}

func decodeInt[T ~int8 | ~int16 | ~int32 | ~int64](arr []any) []T {
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		num, ok := el.(json.Number)
		if !ok {
			continue
		}
		base, err := num.Int64()
		if err != nil {
			continue
		}
		if v, ok := narrowInt[T](base); ok {
			out = append(out, v)
		}
	}
	return out
}

func decodeUint[T ~uint8 | ~uint16 | ~uint64](arr []any) []T {
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		num, ok := el.(json.Number)
		if !ok {
			continue
		}
		base, err := strconv.ParseUint(num.String(), 10, 64)
		if err != nil {
			continue
		}
		if v, ok := narrowUint[T](base); ok {
			out = append(out, v)
		}
	}
	return out
}

func decodeBool(arr []any) Bool {
	out := make(Bool, 0, len(arr))
	for _, el := range arr {
		if v, ok := el.(bool); ok {
			out = append(out, v)
		}
	}
	return out
}

func decodeString(arr []any) String {
	out := make(String, 0, len(arr))
	for _, el := range arr {
		if v, ok := el.(string); ok {
			out = append(out, v)
		}
	}
	return out
}
