package ledgering

import (
	"context"

	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=ledgering

// CampaignFetcher busca as campanhas de um mês na plataforma de anúncios
type CampaignFetcher interface {
	GetMonthlyCampaigns(ctx context.Context, settings domain.MetaSettings, period domain.Period) ([]domain.CampaignLineItem, error)
}
