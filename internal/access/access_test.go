package access

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/pkg/jj"
)

func sample() jj.Value {
	return jj.New(jj.Object{
		"active":  true,
		"age":     int64(31),
		"balance": 10.25,
		"big":     uint64(18446744073709551615),
		"name":    "Yury",
		"born":    "2016-06-10T12:30:00.000Z",
		"site":    "https://example.com/profile",
		"id":      "550e8400-e29b-41d4-a716-446655440000",
		"zone":    "UTC",
		"gone":    nil,
		"tags":    jj.Array{"a", int64(1)},
		"meta":    jj.Object{"k": "v"},
	})
}

func TestRead_Strict(t *testing.T) {
	doc := sample()

	tests := []struct {
		key      string
		as       string
		expected string
	}{
		{"active", "bool", "true"},
		{"age", "int", "31"},
		{"age", "uint", "31"},
		{"big", "uint", "18446744073709551615"},
		{"age", "number", "31"},
		{"balance", "number", "10.25"},
		{"balance", "float", "10.25"},
		{"balance", "double", "10.25"},
		{"name", "string", "Yury"},
		{"born", "date", "2016-06-10T12:30:00.000Z"},
		{"site", "url", "https://example.com/profile"},
		{"id", "uuid", "550e8400-e29b-41d4-a716-446655440000"},
		{"zone", "timezone", "UTC"},
		{"tags", "array", "[\n  \"a\",\n  1\n]"},
		{"meta", "object", "{\n  \"k\": \"v\"\n}"},
		{"gone", "any", "null"},
		{"name", "ANY", `"Yury"`},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.as, func(t *testing.T) {
			got, err := Read(doc.At(tt.key), tt.as, ModeStrict, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRead_StrictFailures(t *testing.T) {
	doc := sample()

	tests := []struct {
		name    string
		value   jj.Value
		as      string
		jjType  jj.ErrorType
		message string
	}{
		{"string as int", doc.At("name"), "int", jj.ErrorTypeWrongType, `jj.WrongType: can't convert "Yury" at path '<root>.name' to type 'Int'`},
		{"float as int", doc.At("balance"), "int", jj.ErrorTypeWrongType, `jj.WrongType: can't convert 10.25 at path '<root>.balance' to type 'Int'`},
		{"null as string", doc.At("gone"), "string", jj.ErrorTypeWrongType, `jj.WrongType: can't convert null at path '<root>.gone' to type 'String'`},
		{"absent as bool", doc.At("missing"), "bool", jj.ErrorTypeWrongType, `jj.WrongType: can't convert nil at path '<root>.missing' to type 'Bool'`},
		{"absent as any", doc.At("missing"), "any", jj.ErrorTypeNotFound, `jj.NotFound: no value at path '<root>.missing'`},
		{"array as object", doc.At("tags"), "object", jj.ErrorTypeWrongType, "jj.WrongType: can't convert [\n  \"a\",\n  1\n] at path '<root>.tags' to type 'Object'"},
		{"string as timezone", doc.At("name"), "timezone", jj.ErrorTypeWrongType, `jj.WrongType: can't convert "Yury" at path '<root>.name' to type 'TimeZone'`},
		{"absent as timezone", doc.At("missing"), "timezone", jj.ErrorTypeWrongType, `jj.WrongType: can't convert nil at path '<root>.missing' to type 'TimeZone'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.value, tt.as, ModeStrict, "")
			require.Error(t, err)

			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ErrorTypeAccess, appErr.Type)

			var jerr *jj.Error
			require.True(t, stderrors.As(err, &jerr))
			assert.Equal(t, tt.jjType, jerr.Type)
			assert.Equal(t, tt.message, jerr.Error())
			assert.Equal(t, "Access error: "+tt.message, errors.UserFriendlyError(err))
		})
	}
}

func TestRead_Optional(t *testing.T) {
	doc := sample()

	tests := []struct {
		value    jj.Value
		as       string
		expected string
	}{
		{doc.At("age"), "int", "31"},
		{doc.At("name"), "int", Missing},
		{doc.At("missing"), "string", Missing},
		{doc.At("gone"), "any", "null"},
		{doc.At("missing"), "any", Missing},
		{doc.At("meta"), "array", Missing},
		{doc.At("site"), "url", "https://example.com/profile"},
		{doc.At("name"), "uuid", Missing},
	}

	for _, tt := range tests {
		got, err := Read(tt.value, tt.as, ModeOptional, "")
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%s as %s", tt.value.Path(), tt.as)
	}
}

func TestRead_Default(t *testing.T) {
	doc := sample()

	tests := []struct {
		value    jj.Value
		as       string
		def      string
		expected string
	}{
		{doc.At("age"), "int", "7", "31"},
		{doc.At("missing"), "int", "7", "7"},
		{doc.At("name"), "bool", "true", "true"},
		{doc.At("missing"), "number", "1.50", "1.5"},
		{doc.At("missing"), "double", "2.5", "2.5"},
		{doc.At("missing"), "string", "fallback", "fallback"},
		{doc.At("missing"), "date", "2000-01-01T00:00:00.000Z", "2000-01-01T00:00:00.000Z"},
		{doc.At("missing"), "uuid", "00000000-0000-0000-0000-000000000000", "00000000-0000-0000-0000-000000000000"},
		{doc.At("missing"), "timezone", "UTC", "UTC"},
		{doc.At("name"), "object", `{"x": 1}`, "{\n  \"x\": 1\n}"},
		{doc.At("missing"), "array", `[]`, "[]"},
		{doc.At("missing"), "any", `"text"`, `"text"`},
	}

	for _, tt := range tests {
		got, err := Read(tt.value, tt.as, ModeDefault, tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%s as %s", tt.value.Path(), tt.as)
	}
}

func TestRead_DefaultOnlyParsedOnMiss(t *testing.T) {
	doc := sample()

	tests := []struct {
		value    jj.Value
		as       string
		def      string
		expected string
	}{
		{doc.At("age"), "int", "", "31"},
		{doc.At("age"), "int", "seven", "31"},
		{doc.At("born"), "date", "yesterday", "2016-06-10T12:30:00.000Z"},
		{doc.At("meta"), "object", "", "{\n  \"k\": \"v\"\n}"},
		{doc.At("tags"), "array", "not json", "[\n  \"a\",\n  1\n]"},
		{doc.At("gone"), "any", "", "null"},
	}

	for _, tt := range tests {
		got, err := Read(tt.value, tt.as, ModeDefault, tt.def)
		require.NoError(t, err, "%s as %s", tt.value.Path(), tt.as)
		assert.Equal(t, tt.expected, got, "%s as %s", tt.value.Path(), tt.as)
	}
}

func TestRead_InvalidInputs(t *testing.T) {
	doc := sample()

	_, err := Read(doc, "complex", ModeStrict, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type 'complex'")

	_, err = Read(doc.At("missing"), "int", ModeDefault, "seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid default 'seven' for type int")

	_, err = Read(doc.At("missing"), "date", ModeDefault, "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), jj.DateLayout)

	_, err = Read(doc.At("missing"), "object", ModeDefault, "")
	require.Error(t, err)

	_, err = Read(doc, "any", Mode("lazy"), "")
	require.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"strict", "Optional", " default "} {
		_, err := ParseMode(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseMode("eager")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode 'eager'")
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []string{
		"any", "array", "bool", "date", "double", "float", "int", "number",
		"object", "string", "timezone", "uint", "url", "uuid",
	}, Types())
}
