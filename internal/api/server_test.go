package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
	"github.com/vfg2006/agency-os-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-os-api/internal/usecases/ledgering"
	"github.com/vfg2006/agency-os-api/internal/usecases/messaging"
	"github.com/vfg2006/agency-os-api/internal/usecases/publishing"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server:    config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://painel.local"}},
		Auth:      config.Auth{TokenTTLHours: 1},
		SecretKey: "segredo-de-teste",
	}

	collections := store.NewFallbackStore(nil, store.NewMemoryStore(), 0)
	contentRepo := repository.NewContentRepository(collections)
	clientRepo := repository.NewClientRepository(collections)
	userRepo := repository.NewUserRepository(collections)
	messageRepo := repository.NewMessageRepository(collections)
	formatter := reporting.NewFormatter("tr")

	srv, err := New(cfg, Services{
		Authenticator: authenticating.NewService(userRepo, cfg),
		Publisher:     publishing.NewService(contentRepo),
		Ledger:        ledgering.NewService(clientRepo, nil, formatter),
		Reporter:      reporting.NewService(clientRepo, reporting.NewEngine(formatter)),
		Inbox:         messaging.NewService(messageRepo),
		Archiver:      archiving.NewService(contentRepo, clientRepo, userRepo, messageRepo, nil),
	})
	require.NoError(t, err)

	return srv.Handler()
}

func do(h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestServer_FluxoCompleto(t *testing.T) {
	h := newTestServer(t)

	rr := do(h, http.MethodGet, "/healthcheck", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(h, http.MethodGet, "/v1/clients", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(h, http.MethodPost, "/v1/login", "", `{"username":"admin","password":"123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rr = do(h, http.MethodPost, "/v1/clients", login.Token, `{"name":"Kafe Luna"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var client struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &client))
	require.True(t, strings.HasPrefix(client.ID, "c_"))

	rr = do(h, http.MethodPatch, "/v1/clients/"+client.ID+"/months/2024-03", login.Token, `{"path":"spend","value":"₺3.000"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(h, http.MethodGet, "/v1/reports/summary?year=2024&start=01&end=12", login.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"spend":"₺3.000"`)

	rr = do(h, http.MethodPost, "/v1/messages", "", `{"name":"Ayşe","email":"ayse@example.com","message":"Merhaba"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(h, http.MethodGet, "/v1/messages", login.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Merhaba")

	rr = do(h, http.MethodGet, "/v1/system/snapshots", login.Token, "")
	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestServer_Cors(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/content", nil)
	req.Header.Set("Origin", "http://painel.local")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://painel.local", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
