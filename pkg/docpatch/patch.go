// Package docpatch aplica edições pontuais em documentos JSON aninhados
// sem alterar o documento original.
package docpatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Document é um objeto JSON decodificado
type Document = map[string]any

var (
	ErrInvalidPath     = errors.New("docpatch: caminho inválido")
	ErrPathConflict    = errors.New("docpatch: segmento intermediário não é objeto nem lista")
	ErrIndexOutOfRange = errors.New("docpatch: índice fora da lista")
	ErrNotAnArray      = errors.New("docpatch: valor do caminho não é uma lista")
	ErrPathNotFound    = errors.New("docpatch: caminho não encontrado")
)

// Patch retorna uma cópia de doc com value gravado no caminho separado por pontos.
// Objetos intermediários ausentes são criados. Segmentos numéricos indexam listas.
// Um escalar no meio do caminho resulta em ErrPathConflict.
func Patch(doc Document, path string, value any) (Document, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	root := Clone(doc)
	if root == nil {
		root = Document{}
	}

	var current any = root
	for i, segment := range segments[:len(segments)-1] {
		next, err := child(current, segment, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, strings.Join(segments[:i+1], "."))
		}
		current = next
	}

	last := segments[len(segments)-1]
	if err := set(current, last, cloneValue(value)); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	return root, nil
}

// Lookup retorna o valor guardado no caminho
func Lookup(doc Document, path string) (any, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	var current any = doc
	for _, segment := range segments {
		next, err := child(current, segment, false)
		if err != nil || next == nil {
			return nil, false
		}
		current = next
	}

	return current, true
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// child desce um nível. Com create, objetos ausentes são criados no lugar.
func child(node any, segment string, create bool) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		next, ok := n[segment]
		if !ok || next == nil {
			if !create {
				return nil, ErrPathNotFound
			}
			next = map[string]any{}
			n[segment] = next
		}
		return next, nil

	case []any:
		idx, err := index(segment, len(n))
		if err != nil {
			return nil, err
		}
		next := n[idx]
		if next == nil {
			if !create {
				return nil, ErrPathNotFound
			}
			next = map[string]any{}
			n[idx] = next
		}
		return next, nil

	default:
		return nil, ErrPathConflict
	}
}

func set(node any, segment string, value any) error {
	switch n := node.(type) {
	case map[string]any:
		n[segment] = value
		return nil

	case []any:
		idx, err := index(segment, len(n))
		if err != nil {
			return err
		}
		n[idx] = value
		return nil

	default:
		return ErrPathConflict
	}
}

func index(segment string, length int) (int, error) {
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, ErrPathConflict
	}
	if idx < 0 || idx >= length {
		return 0, ErrIndexOutOfRange
	}
	return idx, nil
}
