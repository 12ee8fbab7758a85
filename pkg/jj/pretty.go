package jj

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const defaultSpacer = "  "

// render writes raw in the canonical debug format. space is the indentation
// of the line holding raw, spacer is added for each nesting level.
//
// Object keys are written in sorted order since Go maps have none.
func render(raw any, present bool, space, spacer string) string {
	if !present {
		return "nil"
	}
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return `"` + v + `"`
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case json.Number:
		return v.String()
	case Array:
		return renderArray(v, space, spacer)
	case Object:
		return renderObject(v, space, spacer)
	default:
		return fmt.Sprint(v)
	}
}

func renderArray(arr Array, space, spacer string) string {
	if len(arr) == 0 {
		return "[]"
	}
	next := space + spacer
	var b strings.Builder
	b.WriteString("[\n")
	for i, v := range arr {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(next)
		b.WriteString(render(v, true, next, spacer))
	}
	b.WriteString("\n")
	b.WriteString(space)
	b.WriteString("]")
	return b.String()
}

func renderObject(obj Object, space, spacer string) string {
	if len(obj) == 0 {
		return "{}"
	}
	next := space + spacer
	var b strings.Builder
	b.WriteString("{\n")
	for i, k := range sortedKeys(obj) {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(next)
		b.WriteString(`"` + k + `": `)
		b.WriteString(render(obj[k], true, next, spacer))
	}
	b.WriteString("\n")
	b.WriteString(space)
	b.WriteString("}")
	return b.String()
}

func sortedKeys(obj Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
