package metaclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/agency-os-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxPages limita quantas páginas de 100 campanhas são seguidas por consulta
const maxPages = 10

type Client interface {
	GetCampaignInsights(ctx context.Context, accountID, accessToken string, since, until time.Time) ([]metadomain.CampaignInsight, error)
}

type MetaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.Meta) Client {
	return &MetaClient{
		baseURL:    cfg.URL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}
