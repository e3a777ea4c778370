package domain

import "strings"

type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
)

// Asset é um arquivo de mídia compartilhado com o cliente
type Asset struct {
	ID    string    `json:"id"`
	Type  AssetType `json:"type"`
	URL   string    `json:"url"`
	Title string    `json:"title"`
	Date  string    `json:"date"`
}

// ClientVisibility controla quais indicadores o painel do próprio cliente exibe
type ClientVisibility struct {
	ShowSpend  bool `json:"showSpend"`
	ShowRoas   bool `json:"showRoas"`
	ShowVisits bool `json:"showVisits"`
	ShowPlan   bool `json:"showPlan"`
	ShowAssets bool `json:"showAssets"`
	ShowBudget bool `json:"showBudget"`
}

func FullVisibility() ClientVisibility {
	return ClientVisibility{
		ShowSpend:  true,
		ShowRoas:   true,
		ShowVisits: true,
		ShowPlan:   true,
		ShowAssets: true,
		ShowBudget: true,
	}
}

// MetaSettings são as credenciais da conta de anúncios do cliente
type MetaSettings struct {
	AccessToken string `json:"accessToken"`
	AdAccountID string `json:"adAccountId"`
}

func (m *MetaSettings) IsConfigured() bool {
	return m != nil && m.AccessToken != "" && m.AdAccountID != ""
}

// FormattedAccountID garante o prefixo act_ exigido pela Graph API
func (m *MetaSettings) FormattedAccountID() string {
	if strings.HasPrefix(m.AdAccountID, "act_") {
		return m.AdAccountID
	}
	return "act_" + m.AdAccountID
}

// ClientLedger é o histórico completo de uma marca atendida pela agência
type ClientLedger struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Logo           string                 `json:"logo"`
	Visibility     ClientVisibility       `json:"visibility"`
	Assets         []Asset                `json:"assets"`
	MonthlyHistory map[string]MonthlyData `json:"monthlyHistory"`
	MetaSettings   *MetaSettings          `json:"metaSettings,omitempty"`
}

// Periods retorna os períodos válidos do histórico em ordem cronológica.
// Chaves fora do formato YYYY-MM são ignoradas.
func (c ClientLedger) Periods() []Period {
	periods := make([]Period, 0, len(c.MonthlyHistory))
	for key := range c.MonthlyHistory {
		period, err := ParsePeriod(key)
		if err != nil {
			continue
		}
		periods = append(periods, period)
	}

	SortPeriods(periods)
	return periods
}

// LatestPeriod retorna o período mais recente do histórico
func (c ClientLedger) LatestPeriod() (Period, bool) {
	periods := c.Periods()
	if len(periods) == 0 {
		return Period{}, false
	}
	return periods[len(periods)-1], true
}

// Month retorna os dados do período ou o registro padrão quando ele ainda não existe.
// O padrão não é gravado no histórico.
func (c ClientLedger) Month(period Period) (MonthlyData, bool) {
	data, ok := c.MonthlyHistory[period.Key()]
	if !ok {
		return DefaultMonthlyData(), false
	}
	return data, true
}

// UpdateClientRequest contém os campos de perfil editáveis de um cliente
type UpdateClientRequest struct {
	Name         *string           `json:"name"`
	Logo         *string           `json:"logo"`
	Visibility   *ClientVisibility `json:"visibility"`
	MetaSettings *MetaSettings     `json:"metaSettings"`
}
