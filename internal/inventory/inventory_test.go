package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/gojj/internal/config"
	"github.com/mcncl/gojj/internal/parser"
	"github.com/mcncl/gojj/internal/query"
	"github.com/mcncl/gojj/pkg/jj"
)

func walkJSON(t *testing.T, inv *Inventory, input string) []Entry {
	t.Helper()
	doc, err := parser.ParseString(input)
	require.NoError(t, err)
	return inv.Walk(doc.Value())
}

func TestWalk_Object(t *testing.T) {
	input := `{
		"users": [
			{"first_name": "Yury", "id": "550e8400-e29b-41d4-a716-446655440000"},
			{"first_name": "Anna", "site": "https://example.com"}
		],
		"created_at": "2016-06-10T00:00:00.000Z",
		"score": 1.5,
		"odd key": null,
		"settings": {}
	}`

	entries := walkJSON(t, NewInventory(), input)

	type row struct {
		expr, path, accessor, goName string
		kind                         jj.Kind
	}
	var got []row
	for _, e := range entries {
		got = append(got, row{e.Expr, e.Value.Path(), e.Accessor, e.GoName, e.Kind})
	}

	assert.Equal(t, []row{
		{".created_at", "<root>.created_at", "date", "CreatedAt", jj.KindString},
		{`["odd key"]`, "<root>.odd key", "any", "OddKey", jj.KindNull},
		{".score", "<root>.score", "double", "Score", jj.KindFloat},
		{".settings", "<root>.settings", "object", "Settings", jj.KindObject},
		{".users[0].first_name", "<root>.users[0].first_name", "string", "UserFirstName", jj.KindString},
		{".users[0].id", "<root>.users[0].id", "uuid", "UserId", jj.KindString},
		{".users[1].first_name", "<root>.users[1].first_name", "string", "UserFirstName", jj.KindString},
		{".users[1].site", "<root>.users[1].site", "url", "UserSite", jj.KindString},
	}, got)
}

func TestWalk_ExpressionsSelectTheLeaf(t *testing.T) {
	doc, err := parser.ParseString(`{"a": {"b c": [1, [2, 3]]}, "d.e": true}`)
	require.NoError(t, err)
	root := doc.Value()

	entries := NewInventory().Walk(root)
	require.Len(t, entries, 4)

	for _, e := range entries {
		q, err := query.Compile(e.Expr)
		require.NoError(t, err, e.Expr)
		selected := q.Apply(root)
		assert.True(t, selected.Exists(), e.Expr)
		assert.Equal(t, e.Value.Path(), selected.Path())
		assert.Equal(t, e.Value.String(), selected.String())
	}
}

func TestWalk_Roots(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expr     string
		goName   string
		accessor string
	}{
		{"scalar", `42`, ".", "Root", "int"},
		{"huge", `18446744073709551615`, ".", "Root", "uint"},
		{"empty array", `[]`, ".", "Root", "array"},
		{"root array", `[{"name": "x"}]`, "[0].name", "ItemName", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := walkJSON(t, NewInventory(), tt.input)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expr, entries[0].Expr)
			assert.Equal(t, tt.goName, entries[0].GoName)
			assert.Equal(t, tt.accessor, entries[0].Accessor)
		})
	}
}

func TestWalk_NamingConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Naming.FieldMappings["id"] = "ID"

	entries := walkJSON(t, NewInventoryWithConfig(cfg), `{"people": [{"id": 1}], "categories": [{"id": 2}]}`)
	require.Len(t, entries, 2)
	assert.Equal(t, "CategoryID", entries[0].GoName)
	assert.Equal(t, "PersonID", entries[1].GoName)
}

func TestSingularize(t *testing.T) {
	tests := map[string]string{
		"Users":      "User",
		"Categories": "Category",
		"People":     "Person",
		"Status":     "Status",
		"Class":      "Class",
		"Data":       "Data",
		"Item":       "Item",
	}
	for plural, expected := range tests {
		assert.Equal(t, expected, singularize(plural), plural)
	}
}
