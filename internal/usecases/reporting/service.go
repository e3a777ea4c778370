package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var ErrInvalidRange = errors.New("intervalo inválido: use ano YYYY e meses 01..12 com início <= fim")

// RangeFilter é o intervalo pedido pelo painel. Campos vazios usam o ano
// corrente, de janeiro até o mês atual.
type RangeFilter struct {
	Year       string `json:"year"`
	StartMonth string `json:"startMonth"`
	EndMonth   string `json:"endMonth"`
}

// Dashboard é o painel de um cliente com os indicadores ocultos removidos
type Dashboard struct {
	ClientID   string                  `json:"clientId"`
	Name       string                  `json:"name"`
	Logo       string                  `json:"logo"`
	Filter     RangeFilter             `json:"filter"`
	Visibility domain.ClientVisibility `json:"visibility"`
	Spend      string                  `json:"spend,omitempty"`
	Revenue    string                  `json:"revenue,omitempty"`
	Roas       string                  `json:"roas,omitempty"`
	Views      string                  `json:"views,omitempty"`
	Visits     string                  `json:"visits,omitempty"`
	Points     []float64               `json:"points,omitempty"`
	Plan       *domain.WorkPlan        `json:"plan,omitempty"`
	Progress   *WorkPlanProgress       `json:"progress,omitempty"`
	Budget     string                  `json:"budget,omitempty"`
	Assets     []domain.Asset          `json:"assets,omitempty"`
}

type Reporter interface {
	Summary(ctx context.Context, filter RangeFilter) (*AggregateResult, error)
	MonthlySeries(ctx context.Context, filter RangeFilter) ([]MonthlyPoint, error)
	Overview(ctx context.Context) ([]ClientOverview, error)
	ClientOverview(ctx context.Context, role domain.UserRole, clientID string) (*ClientOverview, error)
	Dashboard(ctx context.Context, role domain.UserRole, clientID string, filter RangeFilter) (*Dashboard, error)
}

type Service struct {
	clientRepo repository.ClientRepository
	engine     *Engine
	now        func() time.Time
}

func NewService(clientRepo repository.ClientRepository, engine *Engine) Reporter {
	return &Service{
		clientRepo: clientRepo,
		engine:     engine,
		now:        time.Now,
	}
}

// Summary agrega todos os clientes no intervalo
func (s *Service) Summary(ctx context.Context, filter RangeFilter) (*AggregateResult, error) {
	filter, err := s.normalize(filter)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	result := s.engine.Aggregate(clients, filter.Year, filter.StartMonth, filter.EndMonth)
	return &result, nil
}

func (s *Service) MonthlySeries(ctx context.Context, filter RangeFilter) ([]MonthlyPoint, error) {
	filter, err := s.normalize(filter)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.MonthlySeries(clients, filter.Year, filter.StartMonth, filter.EndMonth), nil
}

// Overview devolve o mês mais recente de cada cliente, na ordem da coleção
func (s *Service) Overview(ctx context.Context) ([]ClientOverview, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]ClientOverview, 0, len(clients))
	for _, client := range clients {
		overviews = append(overviews, s.engine.Overview(client))
	}

	return overviews, nil
}

// ClientOverview segue a regra do painel: id inexistente usa o primeiro cliente
func (s *Service) ClientOverview(ctx context.Context, role domain.UserRole, clientID string) (*ClientOverview, error) {
	client, err := s.resolve(ctx, role, clientID)
	if err != nil {
		return nil, err
	}

	overview := s.engine.Overview(client)
	return &overview, nil
}

// Dashboard agrega apenas o cliente pedido e aplica as flags de visibilidade
func (s *Service) Dashboard(ctx context.Context, role domain.UserRole, clientID string, filter RangeFilter) (*Dashboard, error) {
	filter, err := s.normalize(filter)
	if err != nil {
		return nil, err
	}

	client, err := s.resolve(ctx, role, clientID)
	if err != nil {
		return nil, err
	}

	result := s.engine.Aggregate([]domain.ClientLedger{client}, filter.Year, filter.StartMonth, filter.EndMonth)
	latest := s.engine.Overview(client)
	visibility := client.Visibility

	dashboard := &Dashboard{
		ClientID:   client.ID,
		Name:       client.Name,
		Logo:       client.Logo,
		Filter:     filter,
		Visibility: visibility,
	}

	if visibility.ShowSpend {
		dashboard.Spend = result.Spend
		dashboard.Revenue = result.Revenue
	}
	if visibility.ShowRoas {
		dashboard.Roas = result.Roas
		dashboard.Points = result.Points
	}
	if visibility.ShowVisits {
		dashboard.Visits = result.Visits
		dashboard.Views = result.Views
	}
	if visibility.ShowPlan {
		plan := latest.Data.Plan
		progress := latest.Progress
		dashboard.Plan = &plan
		dashboard.Progress = &progress
	}
	if visibility.ShowBudget {
		dashboard.Budget = latest.Data.Plan.CurrentAdsBudget
	}
	if visibility.ShowAssets {
		dashboard.Assets = client.Assets
	}

	return dashboard, nil
}

// resolve busca o cliente pelo id. Para a equipe, id inexistente cai no primeiro
// cliente; usuários CLIENT recebem um painel vazio e nunca dados de outro cliente.
func (s *Service) resolve(ctx context.Context, role domain.UserRole, clientID string) (domain.ClientLedger, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return domain.ClientLedger{}, err
	}

	for _, client := range clients {
		if client.ID == clientID {
			return client, nil
		}
	}

	if len(clients) > 0 && role != domain.UserRoleClient {
		return clients[0], nil
	}

	return domain.ClientLedger{
		Visibility:     domain.FullVisibility(),
		Assets:         []domain.Asset{},
		MonthlyHistory: map[string]domain.MonthlyData{},
	}, nil
}

// normalize preenche os padrões e valida o intervalo. O intervalo não atravessa anos.
func (s *Service) normalize(filter RangeFilter) (RangeFilter, error) {
	now := domain.PeriodOf(s.now())

	if filter.Year == "" {
		filter.Year = now.YearKey()
	}
	if filter.StartMonth == "" {
		filter.StartMonth = "01"
	}
	if filter.EndMonth == "" {
		filter.EndMonth = now.MonthKey()
	}

	start, err := domain.ParsePeriod(fmt.Sprintf("%s-%s", filter.Year, filter.StartMonth))
	if err != nil {
		return filter, ErrInvalidRange
	}

	end, err := domain.ParsePeriod(fmt.Sprintf("%s-%s", filter.Year, filter.EndMonth))
	if err != nil {
		return filter, ErrInvalidRange
	}

	if end.Before(start) {
		return filter, ErrInvalidRange
	}

	return filter, nil
}
