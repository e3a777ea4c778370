package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_GetMonthlyCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)
	ctx := context.Background()

	settings := domain.MetaSettings{AccessToken: "token", AdAccountID: "123"}
	period := domain.Period{Year: 2024, Month: 2}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, items []domain.CampaignLineItem, err error)
	}{
		{
			name: "Converte as campanhas do mês",
			setup: func() {
				mockClient.EXPECT().
					GetCampaignInsights(
						gomock.Any(),
						"act_123",
						"token",
						time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
					).
					Return([]metadomain.CampaignInsight{
						{
							CampaignID:       "c1",
							CampaignName:     "Verão",
							Spend:            "1500.25",
							Impressions:      "20000",
							InlineLinkClicks: "350",
							CTR:              "0.012345",
							CPC:              "4.29",
							Actions: []metadomain.Action{
								{ActionType: "link_click", Value: "350"},
								{ActionType: "lead", Value: "12"},
								{ActionType: "purchase", Value: "3"},
							},
						},
					}, nil)
			},
			validate: func(t *testing.T, items []domain.CampaignLineItem, err error) {
				require.NoError(t, err)
				require.Len(t, items, 1)

				item := items[0]
				assert.Equal(t, "c1", item.ID)
				assert.Equal(t, "Verão", item.Name)
				assert.Equal(t, domain.CampaignStatusActive, item.Status)
				assert.Equal(t, 1500.25, item.Spend)
				assert.Equal(t, int64(20000), item.Impressions)
				assert.Equal(t, int64(350), item.Clicks)
				assert.Equal(t, int64(12), item.Conversions)
				assert.InDelta(t, 1.2345, item.CTR, 1e-9)
				assert.Equal(t, 4.29, item.CPC)
			},
		},
		{
			name: "Erro da API é propagado",
			setup: func() {
				mockClient.EXPECT().
					GetCampaignInsights(gomock.Any(), "act_123", "token", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, items []domain.CampaignLineItem, err error) {
				assert.Error(t, err)
				assert.Nil(t, items)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			items, err := integrator.GetMonthlyCampaigns(ctx, settings, period)
			tt.validate(t, items, err)
		})
	}
}

func TestFactoryCampaignLineItem_CamposAusentes(t *testing.T) {
	item := FactoryCampaignLineItem(&metadomain.CampaignInsight{Spend: "abc"})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "İsimsiz Kampanya", item.Name)
	assert.Zero(t, item.Spend)
	assert.Zero(t, item.Impressions)
	assert.Zero(t, item.Conversions)
}
