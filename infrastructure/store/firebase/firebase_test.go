package firebase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-os-api/internal/config"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(config.Firebase{
		DatabaseURL: server.URL + "/",
		AuthSecret:  "segredo",
		Timeout:     time.Second,
	})
}

func TestStore_ReadCollection(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, body []byte, err error)
	}{
		{
			name: "Coleção existente",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/clients.json", r.URL.Path)
				assert.Equal(t, "segredo", r.URL.Query().Get("auth"))
				w.Write([]byte(`[{"id":"c1"}]`))
			},
			validate: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.JSONEq(t, `[{"id":"c1"}]`, string(body))
			},
		},
		{
			name: "Coleção inexistente responde null",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("null"))
			},
			validate: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.Nil(t, body)
			},
		},
		{
			name: "Erro do servidor vira erro de transporte",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Permission denied"}`))
			},
			validate: func(t *testing.T, body []byte, err error) {
				assert.Error(t, err)
				assert.Nil(t, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, tt.handler)
			body, err := s.ReadCollection(context.Background(), "clients")
			tt.validate(t, body, err)
		})
	}
}

func TestStore_WriteCollection(t *testing.T) {
	var received []byte

	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/messages.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		received, _ = io.ReadAll(r.Body)
		w.Write(received)
	})

	err := s.WriteCollection(context.Background(), "messages", []byte(`[{"id":"m1"}]`))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1"}]`, string(received))
}
