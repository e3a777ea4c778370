package repository

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/agency-os-api/infrastructure/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// readList lê uma coleção em forma de lista. O segundo retorno indica se a coleção existe.
func readList[T any](ctx context.Context, s store.CollectionStore, name string) ([]T, bool, error) {
	body, err := s.ReadCollection(ctx, name)
	if err != nil {
		return nil, false, err
	}

	if body == nil {
		return nil, false, nil
	}

	items, err := decodeList[T](body)
	if err != nil {
		return nil, false, fmt.Errorf("coleção %s inválida: %w", name, err)
	}

	return items, true, nil
}

// decodeList aceita listas JSON e também objetos com chaves numéricas,
// formato que o Realtime Database usa para listas esparsas.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] != '{' {
		items := make([]T, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var indexed map[string]T
	if err := json.Unmarshal(trimmed, &indexed); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(indexed))
	for key := range indexed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	items := make([]T, 0, len(keys))
	for _, key := range keys {
		items = append(items, indexed[key])
	}
	return items, nil
}

func writeJSON(ctx context.Context, s store.CollectionStore, name string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.WriteCollection(ctx, name, body)
}
