package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/gojj/internal/errors" // Custom errors package
	"github.com/mcncl/gojj/pkg/jj"
)

// Document is a decoded JSON document ready for navigation.
type Document struct {
	Root        any
	RootIsArray bool // True if the root of the JSON is an array vs an object
}

// Value wraps the document root for navigation.
func (d Document) Value(opts ...jj.Option) jj.Value {
	return jj.New(d.Root, opts...)
}

// Parse decodes a single JSON value from reader
func Parse(reader io.Reader) (Document, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Keep integers and floats apart

	var rootValue any
	if err := decoder.Decode(&rootValue); err != nil {
		if stderrors.Is(err, io.EOF) {
			return Document{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return Document{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return Document{}, errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
		}
		return Document{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// Only whitespace may follow the first value.
	if decoder.More() {
		var trailingValue any
		if err := decoder.Decode(&trailingValue); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return Document{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return Document{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	rootValue = normalizeJSONValue(rootValue)
	_, isArray := rootValue.(jj.Array)
	return Document{Root: rootValue, RootIsArray: isArray}, nil
}

// normalizeJSONValue replaces json.Number with int64, uint64 or float64
// so documents carry only the scalar types jj classifies directly.
func normalizeJSONValue(val any) any {
	switch v := val.(type) {
	case jj.Object:
		for key, value := range v {
			v[key] = normalizeJSONValue(value)
		}
		return v
	case jj.Array:
		for i, value := range v {
			v[i] = normalizeJSONValue(value)
		}
		return v
	case json.Number:
		return normalizeNumber(v)
	default:
		return v // string, bool and nil are returned as is
	}
}

func normalizeNumber(n json.Number) any {
	s := string(n)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	// Out of float64 range; keep the text so nothing is lost.
	return n
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return Document{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return Document{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return Document{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		_ = file.Close()
	}()

	stat, err := file.Stat()
	if err != nil {
		return Document{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return Document{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
