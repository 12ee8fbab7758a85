package jj

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Target type names reported in errors.
const (
	TypeBool     = "Bool"
	TypeInt      = "Int"
	TypeUInt     = "UInt"
	TypeNumber   = "Number"
	TypeFloat    = "Float"
	TypeDouble   = "Double"
	TypeString   = "String"
	TypeDate     = "Date"
	TypeURL      = "URL"
	TypeUUID     = "UUID"
	TypeTimeZone = "TimeZone"
	TypeObject   = "Object"
	TypeArray    = "Array"
)

// Value is a path-tracked handle on a node of a decoded JSON document, or
// on the absence of one. The zero Value is absent at an empty path; use New.
//
// Each scalar type T has three accessors: AsT reports (value, ok), ToT falls
// back to a default and GetT returns a *Error on mismatch.
type Value struct {
	raw     any
	present bool
	path    string
	opts    *options
}

// New wraps a decoded document. A nil raw is a present JSON null.
func New(raw any, opts ...Option) Value {
	return Value{raw: raw, present: true, path: RootPath, opts: buildOptions(opts)}
}

func present(raw any, path string, o *options) Value {
	return Value{raw: raw, present: true, path: path, opts: o}
}

func absent(path string, o *options) Value {
	return Value{path: path, opts: o}
}

// AsBool reports the value and whether raw is a bool.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok && v.present
}

// ToBool returns the value, or def when AsBool reports false.
func (v Value) ToBool(def bool) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	return def
}

// GetBool returns the value, or a WrongType *Error when AsBool reports false.
func (v Value) GetBool() (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}
	return false, wrongType(v, TypeBool)
}

// AsInt reports the value and whether raw is an integer that fits in int.
func (v Value) AsInt() (int, bool) {
	if !v.present {
		return 0, false
	}
	i, ok := signed(v.raw)
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

// ToInt returns the value, or def when AsInt reports false.
func (v Value) ToInt(def int) int {
	if i, ok := v.AsInt(); ok {
		return i
	}
	return def
}

// GetInt returns the value, or a WrongType *Error when AsInt reports false.
func (v Value) GetInt() (int, error) {
	if i, ok := v.AsInt(); ok {
		return i, nil
	}
	return 0, wrongType(v, TypeInt)
}

// AsUInt reports the value and whether raw is a non-negative integer that fits in uint.
func (v Value) AsUInt() (uint, bool) {
	if !v.present {
		return 0, false
	}
	u, ok := unsigned(v.raw)
	if !ok || u > math.MaxUint {
		return 0, false
	}
	return uint(u), true
}

// ToUInt returns the value, or def when AsUInt reports false.
func (v Value) ToUInt(def uint) uint {
	if u, ok := v.AsUInt(); ok {
		return u
	}
	return def
}

// GetUInt returns the value, or a WrongType *Error when AsUInt reports false.
func (v Value) GetUInt() (uint, error) {
	if u, ok := v.AsUInt(); ok {
		return u, nil
	}
	return 0, wrongType(v, TypeUInt)
}

// AsNumber reports the value and whether raw is an integer or a finite float.
func (v Value) AsNumber() (decimal.Decimal, bool) {
	if !v.present {
		return decimal.Decimal{}, false
	}
	switch kindOf(v.raw) {
	case KindInt:
		if i, ok := signed(v.raw); ok {
			return decimal.NewFromInt(i), true
		}
		if u, ok := unsigned(v.raw); ok {
			d, err := decimal.NewFromString(strconv.FormatUint(u, 10))
			return d, err == nil
		}
	case KindFloat:
		if f32, ok := v.raw.(float32); ok {
			if isFinite(float64(f32)) {
				return decimal.NewFromFloat32(f32), true
			}
			return decimal.Decimal{}, false
		}
		f, ok := floating(v.raw)
		if ok && isFinite(f) {
			return decimal.NewFromFloat(f), true
		}
	}
	return decimal.Decimal{}, false
}

// ToNumber returns the value, or def when AsNumber reports false.
func (v Value) ToNumber(def decimal.Decimal) decimal.Decimal {
	if d, ok := v.AsNumber(); ok {
		return d
	}
	return def
}

// GetNumber returns the value, or a WrongType *Error when AsNumber reports false.
func (v Value) GetNumber() (decimal.Decimal, error) {
	if d, ok := v.AsNumber(); ok {
		return d, nil
	}
	return decimal.Decimal{}, wrongType(v, TypeNumber)
}

// AsFloat reports the value and whether raw is a float within float32 range.
func (v Value) AsFloat() (float32, bool) {
	if !v.present {
		return 0, false
	}
	if f32, ok := v.raw.(float32); ok {
		return f32, true
	}
	f, ok := floating(v.raw)
	if !ok || (isFinite(f) && math.Abs(f) > math.MaxFloat32) {
		return 0, false
	}
	return float32(f), true
}

// ToFloat returns the value, or def when AsFloat reports false.
func (v Value) ToFloat(def float32) float32 {
	if f, ok := v.AsFloat(); ok {
		return f
	}
	return def
}

// GetFloat returns the value, or a WrongType *Error when AsFloat reports false.
func (v Value) GetFloat() (float32, error) {
	if f, ok := v.AsFloat(); ok {
		return f, nil
	}
	return 0, wrongType(v, TypeFloat)
}

// AsDouble reports the value and whether raw is a float.
func (v Value) AsDouble() (float64, bool) {
	if !v.present {
		return 0, false
	}
	return floating(v.raw)
}

// ToDouble returns the value, or def when AsDouble reports false.
func (v Value) ToDouble(def float64) float64 {
	if f, ok := v.AsDouble(); ok {
		return f
	}
	return def
}

// GetDouble returns the value, or a WrongType *Error when AsDouble reports false.
func (v Value) GetDouble() (float64, error) {
	if f, ok := v.AsDouble(); ok {
		return f, nil
	}
	return 0, wrongType(v, TypeDouble)
}

// AsString reports the value and whether raw is a string.
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok && v.present
}

// ToString returns the value, or def when AsString reports false.
func (v Value) ToString(def string) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return def
}

// GetString returns the value, or a WrongType *Error when AsString reports false.
func (v Value) GetString() (string, error) {
	if s, ok := v.AsString(); ok {
		return s, nil
	}
	return "", wrongType(v, TypeString)
}

// AsDate reports the value and whether raw is a string in DateLayout.
func (v Value) AsDate() (time.Time, bool) {
	s, ok := v.AsString()
	if !ok {
		return time.Time{}, false
	}
	return ParseDate(s)
}

// ToDate returns the value, or def when AsDate reports false.
func (v Value) ToDate(def time.Time) time.Time {
	if t, ok := v.AsDate(); ok {
		return t
	}
	return def
}

// GetDate returns the value, or a WrongType *Error when AsDate reports false.
func (v Value) GetDate() (time.Time, error) {
	if t, ok := v.AsDate(); ok {
		return t, nil
	}
	return time.Time{}, wrongType(v, TypeDate)
}

// AsURL reports the value and whether raw is a non-empty string url.Parse accepts.
func (v Value) AsURL() (*url.URL, bool) {
	s, ok := v.AsString()
	if !ok || s == "" {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	return u, true
}

// ToURL returns the value, or def when AsURL reports false.
func (v Value) ToURL(def *url.URL) *url.URL {
	if u, ok := v.AsURL(); ok {
		return u
	}
	return def
}

// GetURL returns the value, or a WrongType *Error when AsURL reports false.
func (v Value) GetURL() (*url.URL, error) {
	if u, ok := v.AsURL(); ok {
		return u, nil
	}
	return nil, wrongType(v, TypeURL)
}

// AsUUID reports the value and whether raw is a string uuid.Parse accepts.
func (v Value) AsUUID() (uuid.UUID, bool) {
	s, ok := v.AsString()
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ToUUID returns the value, or def when AsUUID reports false.
func (v Value) ToUUID(def uuid.UUID) uuid.UUID {
	if id, ok := v.AsUUID(); ok {
		return id
	}
	return def
}

// GetUUID returns the value, or a WrongType *Error when AsUUID reports false.
func (v Value) GetUUID() (uuid.UUID, error) {
	if id, ok := v.AsUUID(); ok {
		return id, nil
	}
	return uuid.Nil, wrongType(v, TypeUUID)
}

// AsTimeZone resolves an IANA time zone name such as "Europe/Moscow".
func (v Value) AsTimeZone() (*time.Location, bool) {
	s, ok := v.AsString()
	if !ok || s == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// IsNull reports whether the value is a present JSON null.
func (v Value) IsNull() bool {
	return v.present && v.raw == nil
}

// Exists reports whether a value, possibly null, was found at the path.
func (v Value) Exists() bool {
	return v.present
}

// Kind reports the dynamic type of the value.
func (v Value) Kind() Kind {
	if !v.present {
		return KindAbsent
	}
	return kindOf(v.raw)
}

// Required returns v, or a NotFound error if nothing exists at its path.
func (v Value) Required() (Value, error) {
	if !v.present {
		return v, notFound(v.path, "")
	}
	return v, nil
}

// Path returns the route from the document root to this value.
func (v Value) Path() string {
	return v.path
}

// Raw returns the wrapped value. It is nil for both null and absent values.
func (v Value) Raw() any {
	return v.raw
}

// AsObj views v as an object.
func (v Value) AsObj() (Obj, bool) {
	m, ok := v.raw.(Object)
	if !ok || !v.present {
		return Obj{}, false
	}
	return Obj{raw: m, path: v.path, opts: v.opts}, true
}

// ToObj never fails; the result records whether v was an object.
func (v Value) ToObj() MaybeObj {
	if o, ok := v.AsObj(); ok {
		return MaybeObj{inner: &o, path: v.path, opts: v.opts}
	}
	return MaybeObj{path: v.path, opts: v.opts}
}

// GetObj is AsObj failing with WrongType.
func (v Value) GetObj() (Obj, error) {
	if o, ok := v.AsObj(); ok {
		return o, nil
	}
	return Obj{}, wrongType(v, TypeObject)
}

// AsArr views v as an array.
func (v Value) AsArr() (Arr, bool) {
	a, ok := v.raw.(Array)
	if !ok || !v.present {
		return Arr{}, false
	}
	return Arr{raw: a, path: v.path, opts: v.opts}, true
}

// ToArr never fails; the result records whether v was an array.
func (v Value) ToArr() MaybeArr {
	if a, ok := v.AsArr(); ok {
		return MaybeArr{inner: &a, path: v.path, opts: v.opts}
	}
	return MaybeArr{path: v.path, opts: v.opts}
}

// GetArr is AsArr failing with WrongType.
func (v Value) GetArr() (Arr, error) {
	if a, ok := v.AsArr(); ok {
		return a, nil
	}
	return Arr{}, wrongType(v, TypeArray)
}

// At looks up key, treating v as an object.
func (v Value) At(key string) Value {
	return v.ToObj().At(key)
}

// Index looks up index, treating v as an array.
func (v Value) Index(index int) Value {
	return v.ToArr().Index(index)
}

// PrettyPrint renders the value with space as the current indentation and
// spacer added for each nested level.
func (v Value) PrettyPrint(space, spacer string) string {
	return render(v.raw, v.present, space, spacer)
}

// String implements fmt.Stringer using the canonical pretty format.
func (v Value) String() string {
	return v.PrettyPrint("", defaultSpacer)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ToFunc returns the result of as, calling def only when as reports false:
//
//	port := jj.ToFunc(cfg.At("port").AsInt, defaultPort)
func ToFunc[T any](as func() (T, bool), def func() T) T {
	if v, ok := as(); ok {
		return v
	}
	return def()
}
