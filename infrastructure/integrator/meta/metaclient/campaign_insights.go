package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/agency-os-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsights busca as métricas por campanha da conta no intervalo informado
func (c *MetaClient) GetCampaignInsights(
	ctx context.Context,
	accountID, accessToken string,
	since, until time.Time,
) ([]metadomain.CampaignInsight, error) {
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("level", "campaign")
	params.Add("fields", "campaign_id,campaign_name,spend,impressions,inline_link_clicks,actions,ctr,cpc,objective")
	params.Add("time_range", timeRange)
	params.Add("limit", "100")

	next := fmt.Sprintf("%s/%s/insights?%s", c.baseURL, accountID, params.Encode())

	insights := make([]metadomain.CampaignInsight, 0)
	for page := 0; next != "" && page < maxPages; page++ {
		response, err := c.fetchInsightsPage(ctx, next)
		if err != nil {
			return nil, err
		}

		insights = append(insights, response.Data...)
		next = response.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(insights),
	}).Debug("meta: insights de campanhas recebidos")

	return insights, nil
}

func (c *MetaClient) fetchInsightsPage(ctx context.Context, pageURL string) (*ResponseCampaignInsights, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp metadomain.ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr != nil || errResp.Error.Message == "" {
			errResp.Error.Message = string(body)
		}
		return nil, &metadomain.APIError{StatusCode: resp.StatusCode, Details: errResp.Error}
	}

	var response ResponseCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
