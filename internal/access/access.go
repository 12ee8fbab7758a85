// Package access performs typed reads on a jj.Value from textual inputs:
// a target type name, an access mode and a textual default.
package access

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/internal/parser"
	"github.com/mcncl/gojj/pkg/jj"
)

// Mode selects which accessor family is used
type Mode string

const (
	ModeStrict   Mode = "strict"   // Get*: fail on mismatch
	ModeOptional Mode = "optional" // As*: report nil on mismatch
	ModeDefault  Mode = "default"  // To*: fall back to a default
)

// Missing is printed for an optional read that found nothing usable.
const Missing = "nil"

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeStrict, ModeOptional, ModeDefault:
		return m, nil
	default:
		return "", errors.NewAccessError(fmt.Sprintf("unknown mode '%s': want strict, optional or default", s), nil)
	}
}

type readFunc func(v jj.Value, mode Mode, def string) (string, error)

// typed describes the accessors for one target type
type typed[T any] struct {
	name   string
	as     func(jj.Value) (T, bool)
	get    func(jj.Value) (T, error)
	parse  func(string) (T, error)
	format func(T) string
}

func (t typed[T]) read(v jj.Value, mode Mode, def string) (string, error) {
	switch mode {
	case ModeStrict:
		got, err := t.get(v)
		if err != nil {
			return "", errors.NewAccessError(fmt.Sprintf("strict %s read failed", t.name), err)
		}
		return t.format(got), nil
	case ModeOptional:
		got, ok := t.as(v)
		if !ok {
			return Missing, nil
		}
		return t.format(got), nil
	case ModeDefault:
		// def is only parsed on a miss
		if got, ok := t.as(v); ok {
			return t.format(got), nil
		}
		fallback, err := t.parse(def)
		if err != nil {
			return "", errors.NewAccessError(fmt.Sprintf("invalid default '%s' for type %s", def, t.name), err)
		}
		return t.format(fallback), nil
	default:
		return "", errors.NewAccessError(fmt.Sprintf("unknown mode '%s'", mode), nil)
	}
}

var readers = map[string]readFunc{
	"bool": typed[bool]{
		name: "bool", as: jj.Value.AsBool, get: jj.Value.GetBool,
		parse: strconv.ParseBool, format: strconv.FormatBool,
	}.read,
	"int": typed[int]{
		name: "int", as: jj.Value.AsInt, get: jj.Value.GetInt,
		parse: strconv.Atoi, format: strconv.Itoa,
	}.read,
	"uint": typed[uint]{
		name: "uint", as: jj.Value.AsUInt, get: jj.Value.GetUInt,
		parse: func(s string) (uint, error) {
			u, err := strconv.ParseUint(s, 10, 0)
			return uint(u), err
		},
		format: func(u uint) string { return strconv.FormatUint(uint64(u), 10) },
	}.read,
	"number": typed[decimal.Decimal]{
		name: "number", as: jj.Value.AsNumber, get: jj.Value.GetNumber,
		parse: decimal.NewFromString, format: decimal.Decimal.String,
	}.read,
	"float": typed[float32]{
		name: "float", as: jj.Value.AsFloat, get: jj.Value.GetFloat,
		parse: func(s string) (float32, error) {
			f, err := strconv.ParseFloat(s, 32)
			return float32(f), err
		},
		format: func(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) },
	}.read,
	"double": typed[float64]{
		name: "double", as: jj.Value.AsDouble, get: jj.Value.GetDouble,
		parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		format: func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
	}.read,
	"string": typed[string]{
		name: "string", as: jj.Value.AsString, get: jj.Value.GetString,
		parse:  func(s string) (string, error) { return s, nil },
		format: func(s string) string { return s },
	}.read,
	"date": typed[time.Time]{
		name: "date", as: jj.Value.AsDate, get: jj.Value.GetDate,
		parse: func(s string) (time.Time, error) {
			t, ok := jj.ParseDate(s)
			if !ok {
				return time.Time{}, fmt.Errorf("want layout %s", jj.DateLayout)
			}
			return t, nil
		},
		format: jj.FormatDate,
	}.read,
	"url": typed[*url.URL]{
		name: "url", as: jj.Value.AsURL, get: jj.Value.GetURL,
		parse: url.Parse, format: func(u *url.URL) string { return u.String() },
	}.read,
	"uuid": typed[uuid.UUID]{
		name: "uuid", as: jj.Value.AsUUID, get: jj.Value.GetUUID,
		parse: uuid.Parse, format: uuid.UUID.String,
	}.read,
	"timezone": typed[*time.Location]{
		name: "timezone", as: jj.Value.AsTimeZone, get: getTimeZone,
		parse: time.LoadLocation, format: func(l *time.Location) string { return l.String() },
	}.read,
	"object": typed[jj.Value]{
		name: "object", as: containerAs(jj.Value.AsObj), get: containerGet(jj.Value.GetObj),
		parse: parseDocument, format: jj.Value.String,
	}.read,
	"array": typed[jj.Value]{
		name: "array", as: containerAs(jj.Value.AsArr), get: containerGet(jj.Value.GetArr),
		parse: parseDocument, format: jj.Value.String,
	}.read,
	"any": typed[jj.Value]{
		name: "any", as: anyAs, get: jj.Value.Required,
		parse: parseDocument, format: jj.Value.String,
	}.read,
}

// Types lists the accepted target type names in sorted order
func Types() []string {
	names := make([]string, 0, len(readers))
	for name := range readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Read converts v to the named type using the given mode and renders the
// result as text. def is only consulted in ModeDefault.
func Read(v jj.Value, as string, mode Mode, def string) (string, error) {
	read, ok := readers[strings.ToLower(strings.TrimSpace(as))]
	if !ok {
		return "", errors.NewAccessError(
			fmt.Sprintf("unknown type '%s': want one of %s", as, strings.Join(Types(), ", ")),
			nil,
		)
	}
	return read(v, mode, def)
}

// getTimeZone reports misses the way jj's strict accessors do.
func getTimeZone(v jj.Value) (*time.Location, error) {
	if loc, ok := v.AsTimeZone(); ok {
		return loc, nil
	}
	return nil, &jj.Error{
		Type:     jj.ErrorTypeWrongType,
		Value:    v.Raw(),
		HasValue: v.Exists(),
		Path:     v.Path(),
		Target:   jj.TypeTimeZone,
	}
}

// Containers are rendered through their Value so every type shares the
// pretty printer.

type viewer interface{ Value() jj.Value }

func containerAs[C viewer](as func(jj.Value) (C, bool)) func(jj.Value) (jj.Value, bool) {
	return func(v jj.Value) (jj.Value, bool) {
		c, ok := as(v)
		if !ok {
			return jj.Value{}, false
		}
		return c.Value(), true
	}
}

func containerGet[C viewer](get func(jj.Value) (C, error)) func(jj.Value) (jj.Value, error) {
	return func(v jj.Value) (jj.Value, error) {
		c, err := get(v)
		if err != nil {
			return jj.Value{}, err
		}
		return c.Value(), nil
	}
}

func anyAs(v jj.Value) (jj.Value, bool) {
	return v, v.Exists()
}

func parseDocument(s string) (jj.Value, error) {
	doc, err := parser.ParseString(s)
	if err != nil {
		return jj.Value{}, err
	}
	return doc.Value(), nil
}
