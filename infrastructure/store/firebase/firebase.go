package firebase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/internal/config"
)

// Store acessa o Firebase Realtime Database pela API REST.
// Cada coleção fica em {databaseURL}/{nome}.json.
type Store struct {
	baseURL    string
	authSecret string
	client     *http.Client
}

func New(cfg config.Firebase) *Store {
	return &Store{
		baseURL:    strings.TrimSuffix(cfg.DatabaseURL, "/"),
		authSecret: cfg.AuthSecret,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *Store) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.collectionURL(name), nil)
	if err != nil {
		return nil, err
	}

	body, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("firebase: erro ao ler coleção %s: %w", name, err)
	}

	// O Realtime Database responde "null" para caminhos inexistentes
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	return body, nil
}

func (s *Store) WriteCollection(ctx context.Context, name string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.collectionURL(name), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := s.do(req); err != nil {
		return fmt.Errorf("firebase: erro ao gravar coleção %s: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"collection": name,
		"bytes":      len(body),
	}).Debug("firebase: coleção gravada")

	return nil
}

func (s *Store) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func (s *Store) collectionURL(name string) string {
	u := fmt.Sprintf("%s/%s.json", s.baseURL, url.PathEscape(name))
	if s.authSecret == "" {
		return u
	}

	params := url.Values{}
	params.Set("auth", s.authSecret)
	return u + "?" + params.Encode()
}
