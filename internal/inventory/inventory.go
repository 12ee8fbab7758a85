package inventory

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/gojj/internal/config"
	"github.com/mcncl/gojj/internal/query"
	"github.com/mcncl/gojj/pkg/jj"
)

// RootName names a scalar document root.
const RootName = "Root"

// elementName replaces an unnamed array element, e.g. the items of a root array.
const elementName = "Item"

// Patterns used to suggest a richer accessor for string leaves
var (
	uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)
	urlRegex  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://\S+$`)
)

// Entry describes one leaf of a document
type Entry struct {
	// Expr is a path expression that selects the leaf again
	Expr string
	// Value is the leaf itself; Value.Path() is the path jj reports
	Value jj.Value
	Kind  jj.Kind
	// Accessor is the access type name best suited to the leaf
	Accessor string
	// GoName is a Go identifier suggestion built from the keys on the path
	GoName string
}

// Inventory lists the leaves of documents
type Inventory struct {
	config *config.Config
}

// NewInventory creates a new Inventory with default naming rules.
func NewInventory() *Inventory {
	return &Inventory{config: config.NewConfig()}
}

// NewInventoryWithConfig creates a new Inventory using the naming rules of cfg.
func NewInventoryWithConfig(cfg *config.Config) *Inventory {
	return &Inventory{config: cfg}
}

// Walk returns every leaf under v in document order, with object keys
// sorted. Scalars, nulls and empty containers are leaves.
func (inv *Inventory) Walk(v jj.Value) []Entry {
	var entries []Entry
	inv.walk(v, nil, nil, &entries)
	return entries
}

func (inv *Inventory) walk(v jj.Value, steps []query.Step, names []string, out *[]Entry) {
	if obj, ok := v.AsObj(); ok && obj.Len() > 0 {
		for _, key := range obj.Keys() {
			inv.walk(obj.At(key), appendStep(steps, query.Step{Key: key}), appendName(names, inv.fieldName(key)), out)
		}
		return
	}
	if arr, ok := v.AsArr(); ok && arr.Len() > 0 {
		elemNames := singularLast(names)
		for i, elem := range arr.Values() {
			inv.walk(elem, appendStep(steps, query.Step{Index: i, IsIndex: true}), elemNames, out)
		}
		return
	}

	q := &query.Query{Steps: steps}
	expr := strings.TrimPrefix(q.String(), jj.RootPath)
	if expr == "" {
		expr = "."
	}
	*out = append(*out, Entry{
		Expr:     expr,
		Value:    v,
		Kind:     v.Kind(),
		Accessor: accessorFor(v),
		GoName:   goName(names),
	})
}

func (inv *Inventory) fieldName(key string) string {
	name := inv.config.GetFieldName(key)
	if name == "" {
		return "Field"
	}
	return name
}

// accessorFor picks the access type name for a leaf
func accessorFor(v jj.Value) string {
	switch v.Kind() {
	case jj.KindBool:
		return "bool"
	case jj.KindInt:
		if _, ok := v.AsInt(); ok {
			return "int"
		}
		return "uint"
	case jj.KindFloat:
		return "double"
	case jj.KindString:
		s, _ := v.AsString()
		switch {
		case uuidRegex.MatchString(s):
			return "uuid"
		case dateRegex.MatchString(s):
			if _, ok := v.AsDate(); ok {
				return "date"
			}
		case urlRegex.MatchString(s):
			return "url"
		}
		return "string"
	case jj.KindObject:
		return "object"
	case jj.KindArray:
		return "array"
	default:
		return "any"
	}
}

func goName(names []string) string {
	if len(names) == 0 {
		return RootName
	}
	return strings.Join(names, "")
}

// singularLast names the elements of an array after its key.
func singularLast(names []string) []string {
	if len(names) == 0 {
		return []string{elementName}
	}
	out := make([]string, len(names))
	copy(out, names)
	out[len(out)-1] = singularize(out[len(out)-1])
	return out
}

func appendStep(steps []query.Step, s query.Step) []query.Step {
	out := make([]query.Step, len(steps), len(steps)+1)
	copy(out, steps)
	return append(out, s)
}

func appendName(names []string, n string) []string {
	out := make([]string, len(names), len(names)+1)
	copy(out, names)
	return append(out, n)
}

// singularize attempts to convert a plural name to a singular one.
var knownSingulars = map[string]string{
	"series":    "series",
	"status":    "status",
	"analysis":  "analysis",
	"species":   "species",
	"news":      "news",
	"children":  "child",
	"people":    "person",
	"men":       "man",
	"women":     "woman",
	"data":      "data",
	"media":     "media",
	"addresses": "address",
}

func singularize(plural string) string {
	if singular, ok := knownSingulars[strings.ToLower(plural)]; ok {
		// Keep the exported casing
		return strcase.ToCamel(singular)
	}

	lowerPlural := strings.ToLower(plural)

	if strings.HasSuffix(lowerPlural, "ies") && len(lowerPlural) > 3 {
		return plural[:len(plural)-3] + "y"
	}

	// Avoid removing 's' from words like 'bus', 'class', 'status'
	if strings.HasSuffix(lowerPlural, "ss") ||
		strings.HasSuffix(lowerPlural, "us") ||
		strings.HasSuffix(lowerPlural, "is") {
		return plural
	}

	if strings.HasSuffix(lowerPlural, "s") && len(lowerPlural) > 1 {
		return plural[:len(plural)-1]
	}

	return plural
}
