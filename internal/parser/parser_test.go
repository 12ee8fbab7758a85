package parser

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/pkg/jj"
)

func TestParse_SimpleObject(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30, "isStudent": false, "city": null}`
	doc, err := Parse(strings.NewReader(jsonStr))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if doc.RootIsArray {
		t.Errorf("Parse() doc.RootIsArray = true, want false for an object")
	}

	expectedRoot := jj.Object{
		"name":      "John Doe",
		"age":       int64(30),
		"isStudent": false,
		"city":      nil,
	}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("Parse() root = %#v, want %#v", doc.Root, expectedRoot)
	}
}

func TestParse_SimpleArray(t *testing.T) {
	doc, err := Parse(strings.NewReader(`[1, "test", true, null, 3.14]`))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if !doc.RootIsArray {
		t.Errorf("Parse() doc.RootIsArray = false, want true for an array")
	}

	expectedRoot := jj.Array{int64(1), "test", true, nil, 3.14}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("Parse() root = %#v, want %#v", doc.Root, expectedRoot)
	}
}

func TestParse_NestedObject(t *testing.T) {
	jsonStr := `{"user": {"name": "Jane Doe", "id": 123}, "active": true, "tags": ["go", "json"]}`
	doc, err := Parse(strings.NewReader(jsonStr))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	expectedRoot := jj.Object{
		"user": jj.Object{
			"name": "Jane Doe",
			"id":   int64(123),
		},
		"active": true,
		"tags":   jj.Array{"go", "json"},
	}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("Parse() root = %#v, want %#v", doc.Root, expectedRoot)
	}

	name, err := doc.Value().At("user").At("name").GetString()
	if err != nil {
		t.Fatalf("GetString() error = %v", err)
	}
	if name != "Jane Doe" {
		t.Errorf("user.name = %q, want %q", name, "Jane Doe")
	}
}

func TestParse_NumberNormalisation(t *testing.T) {
	testCases := []struct {
		name     string
		jsonStr  string
		expected any
	}{
		{"SmallInt", `42`, int64(42)},
		{"NegativeInt", `-7`, int64(-7)},
		{"BeyondInt64", `18446744073709551615`, uint64(18446744073709551615)},
		{"Fraction", `2.5`, 2.5},
		{"Exponent", `1e3`, 1000.0},
		{"BeyondUint64", `18446744073709551616`, 18446744073709551616.0},
		{"OutOfFloatRange", `1e400`, json.Number("1e400")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseString(tc.jsonStr)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			if !reflect.DeepEqual(doc.Root, tc.expected) {
				t.Errorf("root = %#v (%T), want %#v (%T)", doc.Root, doc.Root, tc.expected, tc.expected)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		jsonStr  string
		sentinel error
		contains string
	}{
		{"Empty", "", errors.ErrEmptyInput, "input is empty"},
		{"Truncated", `{"name": "John Doe", "age": 30`, errors.ErrInvalidJSON, "unexpected end"},
		{"Syntax", `{"name": }`, errors.ErrInvalidJSON, "syntax error"},
		{"Multiple", `{} {}`, errors.ErrMultipleJSON, "multiple JSON values"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.jsonStr))
			if err == nil {
				t.Fatalf("Parse() err = nil, want error")
			}
			if !stderrors.Is(err, tc.sentinel) {
				t.Errorf("Parse() err = %v, want wrapping %v", err, tc.sentinel)
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Errorf("Parse() err = %v, want containing %q", err, tc.contains)
			}
		})
	}
}

func TestParse_TrailingGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"a": 1} oops`))
	if err == nil {
		t.Fatalf("Parse() err = nil, want error")
	}
	if !strings.Contains(err.Error(), "invalid trailing data") {
		t.Errorf("Parse() err = %v, want containing 'invalid trailing data'", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := ParseString(input)
		if err == nil {
			t.Errorf("ParseString(%q) err = nil, want error", input)
			continue
		}
		if !stderrors.Is(err, errors.ErrEmptyInput) {
			t.Errorf("ParseString(%q) err = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestParseFile_SimpleObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple.json")
	if err := os.WriteFile(path, []byte(`{"product": "Laptop", "price": 1200.50}`), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}

	expectedRoot := jj.Object{"product": "Laptop", "price": 1200.5}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("ParseFile() root = %#v, want %#v", doc.Root, expectedRoot)
	}
}

func TestParseFile_NonExistentFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nonexistentfile.json"))
	if !stderrors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("ParseFile() err = %v, want ErrFileNotFound", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("")
	if !stderrors.Is(err, errors.ErrInvalidFilePath) {
		t.Errorf("ParseFile() err = %v, want ErrInvalidFilePath", err)
	}
}

func TestParseFile_EmptyFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	_, err := ParseFile(path)
	if !stderrors.Is(err, errors.ErrFileEmpty) {
		t.Errorf("ParseFile() err = %v, want ErrFileEmpty", err)
	}
}

func TestParse_RootPrimitives(t *testing.T) {
	testCases := []struct {
		name        string
		jsonStr     string
		expectedVal any
		expectedKnd jj.Kind
	}{
		{"RootString", `"hello world"`, "hello world", jj.KindString},
		{"RootNumber", `123.45`, 123.45, jj.KindFloat},
		{"RootBooleanTrue", `true`, true, jj.KindBool},
		{"RootBooleanFalse", `false`, false, jj.KindBool},
		{"RootNull", `null`, nil, jj.KindNull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tc.jsonStr))
			if err != nil {
				t.Fatalf("Parse() error = %v, wantErr nil for %s", err, tc.name)
			}
			if doc.RootIsArray {
				t.Errorf("Parse() doc.RootIsArray = true, want false for %s", tc.name)
			}
			if !reflect.DeepEqual(doc.Root, tc.expectedVal) {
				t.Errorf("Parse() root = %#v (type %T), want %#v (type %T)", doc.Root, doc.Root, tc.expectedVal, tc.expectedVal)
			}
			if got := doc.Value().Kind(); got != tc.expectedKnd {
				t.Errorf("Kind() = %v, want %v", got, tc.expectedKnd)
			}
		})
	}
}
