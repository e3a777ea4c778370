package docpatch

import "fmt"

// ReplaceItem retorna uma nova lista do mesmo tamanho em que o item com o id informado
// recebe os campos de fields (merge raso). Os demais itens são mantidos como estão.
func ReplaceItem(items []any, id string, fields Document) []any {
	out := make([]any, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok || !hasID(obj, id) {
			out[i] = item
			continue
		}

		merged := make(map[string]any, len(obj)+len(fields))
		for key, value := range obj {
			merged[key] = value
		}
		for key, value := range fields {
			merged[key] = cloneValue(value)
		}
		out[i] = merged
	}

	return out
}

// ReplaceByID é a versão tipada de ReplaceItem
func ReplaceByID[T any](items []T, id string, idOf func(T) string, apply func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if idOf(item) == id {
			out[i] = apply(item)
			continue
		}
		out[i] = item
	}

	return out
}

// ReplaceItemAt aplica ReplaceItem na lista guardada em path e devolve o novo documento
func ReplaceItemAt(doc Document, path, id string, fields Document) (Document, error) {
	value, ok := Lookup(doc, path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAnArray, path)
	}

	return Patch(doc, path, ReplaceItem(items, id, fields))
}

func hasID(obj map[string]any, id string) bool {
	value, ok := obj["id"]
	if !ok {
		return false
	}

	switch v := value.(type) {
	case string:
		return v == id
	default:
		return fmt.Sprint(v) == id
	}
}
