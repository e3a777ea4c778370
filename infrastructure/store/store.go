package store

import "context"

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Nomes das coleções guardadas no banco de documentos
const (
	CollectionSiteContent = "siteContent"
	CollectionClients     = "clients"
	CollectionUsers       = "users"
	CollectionMessages    = "messages"
)

var cacheKeys = map[string]string{
	CollectionSiteContent: "agencyos_content",
	CollectionClients:     "agencyos_clients",
	CollectionUsers:       "agencyos_users",
	CollectionMessages:    "agencyos_messages",
}

// CollectionStore lê e grava coleções inteiras como documentos JSON.
// ReadCollection retorna nil, nil quando a coleção não existe; erro só em falha de transporte.
type CollectionStore interface {
	ReadCollection(ctx context.Context, name string) ([]byte, error)
	WriteCollection(ctx context.Context, name string, body []byte) error
}

// Cache guarda a última cópia conhecida de cada coleção
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CacheKey retorna a chave local usada para uma coleção
func CacheKey(collection string) string {
	if key, ok := cacheKeys[collection]; ok {
		return key
	}
	return "agencyos_" + collection
}
