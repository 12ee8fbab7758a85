package jj

import (
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Archive is a flat keyed record store, such as a persisted settings file.
type Archive interface {
	Get(key string) (any, bool)
	Put(key string, v any)
}

// MapArchive is an in-memory Archive.
type MapArchive map[string]any

// Get returns the entry under key.
func (m MapArchive) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Put stores v under key, replacing any earlier entry.
func (m MapArchive) Put(key string, v any) {
	m[key] = v
}

// Encoder writes values to an Archive in a form the Decoder accessors
// read back: dates, URLs, UUIDs and time zones are stored as strings, and a
// nil URL or time zone is stored as null.
type Encoder struct {
	archive Archive
}

// NewEncoder returns an Encoder writing to a.
func NewEncoder(a Archive) Encoder {
	return Encoder{archive: a}
}

// Put stores a raw JSON-model value such as an Object or Array.
func (e Encoder) Put(key string, v any) { e.archive.Put(key, v) }

func (e Encoder) PutInt(key string, v int) { e.archive.Put(key, int64(v)) }
func (e Encoder) PutBool(key string, v bool) { e.archive.Put(key, v) }
func (e Encoder) PutString(key, v string) { e.archive.Put(key, v) }

// PutDate stores t in DateLayout.
func (e Encoder) PutDate(key string, t time.Time) {
	e.archive.Put(key, FormatDate(t))
}

func (e Encoder) PutURL(key string, u *url.URL) {
	if u == nil {
		e.archive.Put(key, nil)
		return
	}
	e.archive.Put(key, u.String())
}

func (e Encoder) PutUUID(key string, id uuid.UUID) {
	e.archive.Put(key, id.String())
}

// PutTimeZone stores the zone name, e.g. "Europe/Moscow".
func (e Encoder) PutTimeZone(key string, loc *time.Location) {
	if loc == nil {
		e.archive.Put(key, nil)
		return
	}
	e.archive.Put(key, loc.String())
}

// Decoder reads entries of an Archive as Values whose path is the key, so
// the usual accessors and error reporting apply.
type Decoder struct {
	archive Archive
	opts    *options
}

// NewDecoder returns a Decoder reading from a.
func NewDecoder(a Archive, opts ...Option) Decoder {
	return Decoder{archive: a, opts: buildOptions(opts)}
}

// At returns the entry stored under key, absent if there is none.
func (d Decoder) At(key string) Value {
	v, ok := d.archive.Get(key)
	if !ok {
		return absent(key, d.opts)
	}
	return present(v, key, d.opts)
}

// Required is like At but fails with NotFound for a missing key.
func (d Decoder) Required(key string) (Value, error) {
	return d.At(key).Required()
}

// Decode returns the entry under key as a T without any conversion.
// Failures report T's name, e.g. "time.Duration".
func Decode[T any](d Decoder, key string) (T, error) {
	var zero T
	raw, ok := d.archive.Get(key)
	if !ok {
		return zero, notFound(key, typeName[T]())
	}
	v, ok := raw.(T)
	if !ok {
		return zero, &Error{
			Type:     ErrorTypeWrongType,
			Value:    raw,
			HasValue: true,
			Path:     key,
			Target:   typeName[T](),
		}
	}
	return v, nil
}

// DecodeAs is the optional form of Decode.
func DecodeAs[T any](d Decoder, key string) (T, bool) {
	v, err := Decode[T](d, key)
	return v, err == nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
