package ledgering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	metadomain "github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
	"github.com/vfg2006/agency-os-api/pkg/docpatch"
	"github.com/vfg2006/agency-os-api/pkg/log"
	"github.com/vfg2006/agency-os-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// strictJSON rejeita campos desconhecidos ao remontar um mês editado
var strictJSON = jsoniter.Config{
	EscapeHTML:            true,
	SortMapKeys:           true,
	DisallowUnknownFields: true,
}.Froze()

type Ledger interface {
	ListClients(ctx context.Context) ([]domain.ClientLedger, error)
	GetClient(ctx context.Context, clientID string) (*domain.ClientLedger, error)
	ResolveClient(ctx context.Context, clientID string) (*domain.ClientLedger, error)
	CreateClient(ctx context.Context, name string) (*domain.ClientLedger, error)
	UpdateClient(ctx context.Context, clientID string, req *domain.UpdateClientRequest) (*domain.ClientLedger, error)
	DeleteClient(ctx context.Context, clientID string, confirm bool) error
	GetMonth(ctx context.Context, clientID string, period domain.Period) (*MonthView, error)
	PatchMonth(ctx context.Context, clientID string, period domain.Period, path string, value any) (*domain.MonthlyData, error)
	AddAsset(ctx context.Context, clientID string, asset domain.Asset) (*domain.Asset, error)
	RemoveAsset(ctx context.Context, clientID, assetID string) error
	SyncMetaCampaigns(ctx context.Context, clientID string, period domain.Period) (*MetaSyncResult, error)
}

// MonthView é o mês pedido; Stored indica se o registro já existe no histórico
type MonthView struct {
	ClientID string             `json:"clientId"`
	Period   string             `json:"period"`
	Stored   bool               `json:"stored"`
	Data     domain.MonthlyData `json:"data"`
}

// MetaSyncResult resume uma sincronização de campanhas
type MetaSyncResult struct {
	ClientID   string `json:"clientId"`
	Period     string `json:"period"`
	Campaigns  int    `json:"campaigns"`
	Spend      string `json:"spend"`
	TotalViews string `json:"totalViews"`
}

type Service struct {
	clientRepo repository.ClientRepository
	campaigns  CampaignFetcher
	formatter  *reporting.Formatter
	now        func() time.Time
	mu         sync.Mutex
}

func NewService(
	clientRepo repository.ClientRepository,
	campaigns CampaignFetcher,
	formatter *reporting.Formatter,
) Ledger {
	return &Service{
		clientRepo: clientRepo,
		campaigns:  campaigns,
		formatter:  formatter,
		now:        time.Now,
	}
}

func (s *Service) ListClients(ctx context.Context) ([]domain.ClientLedger, error) {
	return s.clientRepo.ListClients(ctx)
}

// GetClient retorna ErrClientNotFound quando o id não existe
func (s *Service) GetClient(ctx context.Context, clientID string) (*domain.ClientLedger, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	client, ok := findClient(clients, clientID)
	if !ok {
		return nil, NewLedgerError(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "")
	}

	return &client, nil
}

// ResolveClient nunca falha por id inexistente: devolve o primeiro cliente
// ou um cliente vazio quando não há nenhum cadastrado.
func (s *Service) ResolveClient(ctx context.Context, clientID string) (*domain.ClientLedger, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	if client, ok := findClient(clients, clientID); ok {
		return &client, nil
	}

	if len(clients) > 0 {
		log.ForContext(ctx).WithField("client_id", clientID).Warn("ledger: cliente não encontrado, usando o primeiro da lista")
		return &clients[0], nil
	}

	return placeholderClient(), nil
}

// CreateClient cadastra a marca com o mês corrente já preenchido com o registro padrão
func (s *Service) CreateClient(ctx context.Context, name string) (*domain.ClientLedger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewLedgerError(ErrMissingClientName, apiErrors.ErrMissingRequiredData, "", "")
	}

	client := domain.ClientLedger{
		ID:         "c_" + utils.GenerateID(),
		Name:       strings.ToUpper(name),
		Visibility: domain.FullVisibility(),
		Assets:     []domain.Asset{},
		MonthlyHistory: map[string]domain.MonthlyData{
			domain.PeriodOf(s.now()).Key(): domain.DefaultMonthlyData(),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.SaveClients(ctx, append(clients, client)); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("client_id", client.ID).Info("ledger: cliente criado")

	return &client, nil
}

func (s *Service) UpdateClient(ctx context.Context, clientID string, req *domain.UpdateClientRequest) (*domain.ClientLedger, error) {
	return s.mutateClient(ctx, clientID, func(client *domain.ClientLedger) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return NewLedgerError(ErrMissingClientName, apiErrors.ErrMissingRequiredData, clientID, "")
			}
			client.Name = strings.ToUpper(name)
		}
		if req.Logo != nil {
			client.Logo = *req.Logo
		}
		if req.Visibility != nil {
			client.Visibility = *req.Visibility
		}
		if req.MetaSettings != nil {
			settings := *req.MetaSettings
			client.MetaSettings = &settings
		}
		return nil
	})
}

// DeleteClient remove o cliente e todo o histórico. Exige confirm=true.
func (s *Service) DeleteClient(ctx context.Context, clientID string, confirm bool) error {
	if !confirm {
		return NewLedgerError(ErrConfirmationRequired, apiErrors.ErrConfirmationRequired, clientID, "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.ClientLedger, 0, len(clients))
	for _, client := range clients {
		if client.ID != clientID {
			remaining = append(remaining, client)
		}
	}

	if len(remaining) == len(clients) {
		return NewLedgerError(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "")
	}

	if err := s.clientRepo.SaveClients(ctx, remaining); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("client_id", clientID).Warn("ledger: cliente excluído")

	return nil
}

// GetMonth devolve o mês ou o registro padrão, que não é gravado
func (s *Service) GetMonth(ctx context.Context, clientID string, period domain.Period) (*MonthView, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	data, stored := client.Month(period)

	return &MonthView{
		ClientID: client.ID,
		Period:   period.Key(),
		Stored:   stored,
		Data:     data,
	}, nil
}

// PatchMonth edita um campo do mês ("roas", "plan.completedPosts") e grava o mês inteiro.
// Um mês ainda inexistente parte do registro padrão.
func (s *Service) PatchMonth(
	ctx context.Context,
	clientID string,
	period domain.Period,
	path string,
	value any,
) (*domain.MonthlyData, error) {
	var result domain.MonthlyData

	_, err := s.mutateClient(ctx, clientID, func(client *domain.ClientLedger) error {
		current, _ := client.Month(period)

		updated, err := patchMonthlyData(current, path, value)
		if err != nil {
			return err
		}

		client.MonthlyHistory = withMonth(client.MonthlyHistory, period, updated)
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) AddAsset(ctx context.Context, clientID string, asset domain.Asset) (*domain.Asset, error) {
	if asset.URL == "" || (asset.Type != domain.AssetTypeImage && asset.Type != domain.AssetTypeVideo) {
		return nil, NewLedgerError(ErrInvalidAsset, apiErrors.ErrInvalidFormat, clientID, "url e tipo (image|video) são obrigatórios")
	}

	date, err := utils.ParseDate(asset.Date)
	if err != nil {
		return nil, NewLedgerError(ErrInvalidAsset, apiErrors.ErrInvalidFormat, clientID, err.Error())
	}
	if date == nil {
		today := s.now()
		date = &today
	}

	asset.ID = "a_" + utils.GenerateID()
	asset.Date = date.Format(time.DateOnly)

	_, err = s.mutateClient(ctx, clientID, func(client *domain.ClientLedger) error {
		assets := make([]domain.Asset, 0, len(client.Assets)+1)
		assets = append(assets, client.Assets...)
		client.Assets = append(assets, asset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

func (s *Service) RemoveAsset(ctx context.Context, clientID, assetID string) error {
	_, err := s.mutateClient(ctx, clientID, func(client *domain.ClientLedger) error {
		assets := make([]domain.Asset, 0, len(client.Assets))
		for _, asset := range client.Assets {
			if asset.ID != assetID {
				assets = append(assets, asset)
			}
		}

		if len(assets) == len(client.Assets) {
			return NewLedgerError(ErrAssetNotFound, apiErrors.ErrAssetNotFound, clientID, assetID)
		}

		client.Assets = assets
		return nil
	})
	return err
}

// SyncMetaCampaigns importa as campanhas do mês e atualiza gasto e visualizações
func (s *Service) SyncMetaCampaigns(ctx context.Context, clientID string, period domain.Period) (*MetaSyncResult, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if !client.MetaSettings.IsConfigured() {
		return nil, NewLedgerError(ErrMetaNotConfigured, apiErrors.ErrIntegrationNotEnabled, clientID, "")
	}

	campaigns, err := s.campaigns.GetMonthlyCampaigns(ctx, *client.MetaSettings, period)
	if err != nil {
		var apiErr *metadomain.APIError
		if errors.As(err, &apiErr) && apiErr.IsTokenExpired() {
			return nil, NewLedgerError(ErrMetaTokenExpired, apiErrors.ErrExternalToken, clientID, apiErr.Details.Message)
		}
		return nil, NewLedgerError(ErrMetaRequestFailed, apiErrors.ErrExternalService, clientID, err.Error())
	}

	totalSpend := decimal.Zero
	var totalImpressions int64
	for _, campaign := range campaigns {
		totalSpend = totalSpend.Add(decimal.NewFromFloat(campaign.Spend))
		totalImpressions += campaign.Impressions
	}

	result := &MetaSyncResult{
		ClientID:   clientID,
		Period:     period.Key(),
		Campaigns:  len(campaigns),
		Spend:      s.formatter.Currency(totalSpend.Round(0).IntPart()),
		TotalViews: s.formatter.Number(totalImpressions),
	}

	_, err = s.mutateClient(ctx, clientID, func(client *domain.ClientLedger) error {
		data, _ := client.Month(period)
		data.MetaData = campaigns
		data.Spend = result.Spend
		data.Plan.TotalViews = result.TotalViews

		client.MonthlyHistory = withMonth(client.MonthlyHistory, period, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"client_id": clientID,
		"period":    period.Key(),
		"campaigns": len(campaigns),
	}).Info("ledger: campanhas do Meta sincronizadas")

	return result, nil
}

// mutateClient aplica fn ao cliente e grava a coleção inteira com o cliente substituído
func (s *Service) mutateClient(
	ctx context.Context,
	clientID string,
	fn func(client *domain.ClientLedger) error,
) (*domain.ClientLedger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	client, ok := findClient(clients, clientID)
	if !ok {
		return nil, NewLedgerError(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "")
	}

	if err := fn(&client); err != nil {
		return nil, err
	}

	clients = docpatch.ReplaceByID(clients, clientID, clientIDOf, func(domain.ClientLedger) domain.ClientLedger {
		return client
	})

	if err := s.clientRepo.SaveClients(ctx, clients); err != nil {
		return nil, err
	}

	return &client, nil
}

// patchMonthlyData aplica o caminho sobre a forma JSON do mês e remonta o registro
func patchMonthlyData(data domain.MonthlyData, path string, value any) (domain.MonthlyData, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return data, err
	}

	var doc docpatch.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return data, err
	}

	patched, err := docpatch.Patch(doc, path, value)
	if err != nil {
		return data, err
	}

	body, err = json.Marshal(patched)
	if err != nil {
		return data, err
	}

	var updated domain.MonthlyData
	if err := strictJSON.Unmarshal(body, &updated); err != nil {
		return data, NewLedgerError(ErrInvalidMonthlyData, apiErrors.ErrInvalidFormat, "", err.Error())
	}

	// status antigo fora da lista não bloqueia edições de outros campos
	if updated.Plan.Status != data.Plan.Status && !updated.Plan.Status.IsValid() {
		return data, NewLedgerError(ErrInvalidMonthlyData, apiErrors.ErrInvalidFormat, "", fmt.Sprintf("status %q", updated.Plan.Status))
	}

	return updated, nil
}

// withMonth devolve um novo mapa de histórico com o período substituído
func withMonth(history map[string]domain.MonthlyData, period domain.Period, data domain.MonthlyData) map[string]domain.MonthlyData {
	next := make(map[string]domain.MonthlyData, len(history)+1)
	for key, value := range history {
		next[key] = value
	}
	next[period.Key()] = data
	return next
}

func findClient(clients []domain.ClientLedger, clientID string) (domain.ClientLedger, bool) {
	for _, client := range clients {
		if client.ID == clientID {
			return client, true
		}
	}
	return domain.ClientLedger{}, false
}

func clientIDOf(client domain.ClientLedger) string {
	return client.ID
}

func placeholderClient() *domain.ClientLedger {
	return &domain.ClientLedger{
		Visibility:     domain.FullVisibility(),
		Assets:         []domain.Asset{},
		MonthlyHistory: map[string]domain.MonthlyData{},
	}
}
