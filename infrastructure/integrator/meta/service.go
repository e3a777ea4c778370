package meta

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/pkg/utils"
)

const unnamedCampaign = "İsimsiz Kampanya"

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

// GetMonthlyCampaigns busca as campanhas da conta do cliente no mês informado
func (s *MetaIntegrator) GetMonthlyCampaigns(
	ctx context.Context,
	settings domain.MetaSettings,
	period domain.Period,
) ([]domain.CampaignLineItem, error) {
	accountID := settings.FormattedAccountID()

	insights, err := s.Client.GetCampaignInsights(
		ctx,
		accountID,
		settings.AccessToken,
		period.FirstDay(time.UTC),
		period.LastDay(time.UTC),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"period":     period.Key(),
			"error":      err.Error(),
		}).Error("meta: falha ao buscar insights de campanhas")
		return nil, err
	}

	items := make([]domain.CampaignLineItem, 0, len(insights))
	for i := range insights {
		items = append(items, FactoryCampaignLineItem(&insights[i]))
	}

	return items, nil
}

// FactoryCampaignLineItem converte uma linha de insights em item do histórico.
// Valores ausentes ou inválidos viram zero; o CTR chega em fração e é guardado em porcentagem, sem arredondar.
func FactoryCampaignLineItem(insight *metadomain.CampaignInsight) domain.CampaignLineItem {
	item := domain.CampaignLineItem{
		ID:          insight.CampaignID,
		Name:        insight.CampaignName,
		Status:      domain.CampaignStatusActive,
		Spend:       parseFloat(insight.Spend),
		Impressions: parseInt(insight.Impressions),
		Clicks:      parseInt(insight.InlineLinkClicks),
		Conversions: insight.Conversions(),
		CTR:         parseFloat(insight.CTR) * 100,
		CPC:         parseFloat(insight.CPC),
	}

	if item.ID == "" {
		item.ID = utils.GenerateID()
	}

	if item.Name == "" {
		item.Name = unnamedCampaign
	}

	return item
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("meta: valor numérico inválido")
		return 0
	}
	return f
}

func parseInt(value string) int64 {
	return int64(parseFloat(value))
}
