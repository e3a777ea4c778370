package docpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceItem(t *testing.T) {
	a := map[string]any{"id": "a", "x": 1}
	b := map[string]any{"id": "b", "x": 2}
	items := []any{a, b}

	out := ReplaceItem(items, "b", Document{"x": 9})

	require.Len(t, out, 2)
	assert.Equal(t, map[string]any{"id": "a", "x": 1}, out[0])
	assert.Equal(t, map[string]any{"id": "b", "x": 9}, out[1])

	// item não alterado mantém a mesma referência
	outA := out[0].(map[string]any)
	outA["touched"] = true
	assert.Equal(t, true, a["touched"])

	// a lista e o item originais continuam iguais
	assert.Equal(t, 2, b["x"])
	assert.Equal(t, 2, items[1].(map[string]any)["x"])
}

func TestReplaceItem_IDInexistente(t *testing.T) {
	items := []any{map[string]any{"id": "a"}, "escalar"}

	out := ReplaceItem(items, "z", Document{"x": 1})

	assert.Equal(t, items, out)
}

func TestReplaceByID(t *testing.T) {
	type item struct {
		ID    string
		Value int
	}

	items := []item{{ID: "a", Value: 1}, {ID: "b", Value: 2}}

	out := ReplaceByID(items, "a", func(i item) string { return i.ID }, func(i item) item {
		i.Value = 10
		return i
	})

	assert.Equal(t, []item{{ID: "a", Value: 10}, {ID: "b", Value: 2}}, out)
	assert.Equal(t, 1, items[0].Value)
}

func TestReplaceItemAt(t *testing.T) {
	doc := Document{
		"services": []any{
			map[string]any{"id": "S1", "title": "PERFORMANS"},
			map[string]any{"id": "S2", "title": "SOSYAL"},
		},
	}

	out, err := ReplaceItemAt(doc, "services", "S2", Document{"title": "SOSYAL MEDYA"})
	require.NoError(t, err)

	services := out["services"].([]any)
	assert.Len(t, services, 2)
	assert.Equal(t, "SOSYAL MEDYA", services[1].(map[string]any)["title"])
	assert.Equal(t, "SOSYAL", doc["services"].([]any)[1].(map[string]any)["title"])

	_, err = ReplaceItemAt(doc, "services.0.title", "S1", Document{})
	assert.ErrorIs(t, err, ErrNotAnArray)

	_, err = ReplaceItemAt(doc, "blogPosts", "x", Document{})
	assert.ErrorIs(t, err, ErrPathNotFound)
}
