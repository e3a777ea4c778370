package docpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() Document {
	return Document{
		"hero": map[string]any{
			"title":    "X",
			"subtitle": "sub",
		},
		"branding": map[string]any{
			"logoUrl": "old",
			"socials": []any{
				map[string]any{"platform": "Instagram", "url": "a"},
				map[string]any{"platform": "Linkedin", "url": "b"},
			},
		},
		"legal": "texto",
	}
}

func TestPatch(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		value    any
		validate func(t *testing.T, out Document, err error)
	}{
		{
			name:  "Atualiza campo existente",
			path:  "hero.title",
			value: "Y",
			validate: func(t *testing.T, out Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Y", out["hero"].(map[string]any)["title"])
				assert.Equal(t, "sub", out["hero"].(map[string]any)["subtitle"])
			},
		},
		{
			name:  "Cria objetos intermediários ausentes",
			path:  "portals.client.welcomeMsg",
			value: "Olá",
			validate: func(t *testing.T, out Document, err error) {
				require.NoError(t, err)
				portals := out["portals"].(map[string]any)
				assert.Equal(t, "Olá", portals["client"].(map[string]any)["welcomeMsg"])
			},
		},
		{
			name:  "Segmento numérico indexa a lista",
			path:  "branding.socials.1.url",
			value: "https://linkedin.com/x",
			validate: func(t *testing.T, out Document, err error) {
				require.NoError(t, err)
				socials := out["branding"].(map[string]any)["socials"].([]any)
				assert.Equal(t, "https://linkedin.com/x", socials[1].(map[string]any)["url"])
				assert.Equal(t, "a", socials[0].(map[string]any)["url"])
			},
		},
		{
			name:  "Escalar no meio do caminho retorna erro estrutural",
			path:  "legal.privacy",
			value: "novo",
			validate: func(t *testing.T, out Document, err error) {
				assert.ErrorIs(t, err, ErrPathConflict)
				assert.Nil(t, out)
			},
		},
		{
			name:  "Índice fora da lista retorna erro",
			path:  "branding.socials.5.url",
			value: "x",
			validate: func(t *testing.T, out Document, err error) {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			},
		},
		{
			name:  "Caminho vazio é inválido",
			path:  "",
			value: "x",
			validate: func(t *testing.T, out Document, err error) {
				assert.ErrorIs(t, err, ErrInvalidPath)
			},
		},
		{
			name:  "Segmento vazio é inválido",
			path:  "hero..title",
			value: "x",
			validate: func(t *testing.T, out Document, err error) {
				assert.ErrorIs(t, err, ErrInvalidPath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Patch(sampleDoc(), tt.path, tt.value)
			tt.validate(t, out, err)
		})
	}
}

func TestPatch_NaoAlteraDocumentoOriginal(t *testing.T) {
	doc := sampleDoc()
	before := sampleDoc()

	out, err := Patch(doc, "hero.title", "Y")
	require.NoError(t, err)

	assert.Equal(t, before, doc)
	assert.Equal(t, "X", doc["hero"].(map[string]any)["title"])
	assert.NotEqual(t, doc, out)

	// alterar o resultado não pode vazar para o original
	out["branding"].(map[string]any)["logoUrl"] = "mutado"
	assert.Equal(t, "old", doc["branding"].(map[string]any)["logoUrl"])
}

func TestPatch_Idempotente(t *testing.T) {
	doc := sampleDoc()

	once, err := Patch(doc, "branding.logoUrl", "x")
	require.NoError(t, err)

	twice, err := Patch(once, "branding.logoUrl", "x")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestPatch_DocumentoNulo(t *testing.T) {
	out, err := Patch(nil, "seo.siteTitle", "AgencyOS")
	require.NoError(t, err)
	assert.Equal(t, "AgencyOS", out["seo"].(map[string]any)["siteTitle"])
}

func TestPatch_ValorNaoCompartilhaReferencia(t *testing.T) {
	value := map[string]any{"title": "A"}

	out, err := Patch(Document{}, "corporate.about", value)
	require.NoError(t, err)

	value["title"] = "B"
	assert.Equal(t, "A", out["corporate"].(map[string]any)["about"].(map[string]any)["title"])
}

func TestLookup(t *testing.T) {
	doc := sampleDoc()

	value, ok := Lookup(doc, "branding.socials.0.platform")
	assert.True(t, ok)
	assert.Equal(t, "Instagram", value)

	_, ok = Lookup(doc, "branding.missing")
	assert.False(t, ok)

	_, ok = Lookup(doc, "legal.privacy")
	assert.False(t, ok)
}
