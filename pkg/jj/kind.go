package jj

import (
	"encoding/json"
	"math"
	"strconv"
)

// Object is the raw form of a JSON object.
type Object = map[string]any

// Array is the raw form of a JSON array.
type Array = []any

// Kind is the dynamic type of a raw value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// kindOf classifies a present raw value. Values of types outside the JSON
// model report KindAbsent so that no accessor accepts them.
func kindOf(raw any) Kind {
	switch v := raw.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case json.Number:
		if _, ok := numberInt(v); ok {
			return KindInt
		}
		if _, ok := numberUint(v); ok {
			return KindInt
		}
		return KindFloat
	case string:
		return KindString
	case Array:
		return KindArray
	case Object:
		return KindObject
	default:
		return KindAbsent
	}
}

func numberInt(n json.Number) (int64, bool) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	return i, err == nil
}

func numberUint(n json.Number) (uint64, bool) {
	u, err := strconv.ParseUint(string(n), 10, 64)
	return u, err == nil
}

// signed extracts an integer that fits in int64.
func signed(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return fitSigned(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return fitSigned(v)
	case json.Number:
		return numberInt(v)
	}
	return 0, false
}

// unsigned extracts a non-negative integer.
func unsigned(raw any) (uint64, bool) {
	switch v := raw.(type) {
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case json.Number:
		return numberUint(v)
	}
	if i, ok := signed(raw); ok && i >= 0 {
		return uint64(i), true
	}
	return 0, false
}

func fitSigned(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// floating extracts a value of KindFloat.
func floating(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		if kindOf(v) != KindFloat {
			return 0, false
		}
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
