package metadomain

import "strconv"

// ConversionActionTypes são as ações contadas como conversão, em ordem de preferência
var ConversionActionTypes = map[string]struct{}{
	"purchase":                             {},
	"offsite_conversion.fb_pixel_purchase": {},
	"lead":                                 {},
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// CampaignInsight é uma linha de /act_{id}/insights com level=campaign.
// A Graph API devolve os números como strings.
type CampaignInsight struct {
	CampaignID       string   `json:"campaign_id"`
	CampaignName     string   `json:"campaign_name"`
	Objective        string   `json:"objective"`
	Spend            string   `json:"spend"`
	Impressions      string   `json:"impressions"`
	InlineLinkClicks string   `json:"inline_link_clicks"`
	CTR              string   `json:"ctr"`
	CPC              string   `json:"cpc"`
	Actions          []Action `json:"actions"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
}

// Conversions retorna o valor da primeira ação de compra ou lead encontrada
func (c *CampaignInsight) Conversions() int64 {
	for _, action := range c.Actions {
		if _, ok := ConversionActionTypes[action.ActionType]; !ok {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			return 0
		}
		return int64(value)
	}

	return 0
}
