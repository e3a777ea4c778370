package domain

// CurrencySymbol é o prefixo usado em todos os valores monetários formatados
const CurrencySymbol = "₺"

type PlanStatus string

// Os valores armazenados seguem os documentos já existentes
const (
	PlanStatusPreparing       PlanStatus = "Hazırlanıyor"
	PlanStatusLive            PlanStatus = "Yayında"
	PlanStatusPendingApproval PlanStatus = "Onay Bekliyor"
	PlanStatusCompleted       PlanStatus = "Tamamlandı"
)

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPreparing, PlanStatusLive, PlanStatusPendingApproval, PlanStatusCompleted:
		return true
	}
	return false
}

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

// WorkPlan representa o plano de conteúdo do mês (posts, vídeos e orçamento)
type WorkPlan struct {
	TargetPosts      int        `json:"targetPosts"`
	CompletedPosts   int        `json:"completedPosts"`
	TargetVideos     int        `json:"targetVideos"`
	CompletedVideos  int        `json:"completedVideos"`
	CurrentAdsBudget string     `json:"currentAdsBudget"`
	Status           PlanStatus `json:"status"`
	TotalViews       string     `json:"totalViews"`
}

// CampaignLineItem é o retrato de uma campanha da plataforma de anúncios em um mês
type CampaignLineItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Spend       float64        `json:"spend"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	CTR         float64        `json:"ctr"`
	CPC         float64        `json:"cpc"`
}

// MonthlyData guarda a performance de um cliente em um mês.
// Valores monetários e de ROAS são strings já formatadas para exibição ("₺12.345", "3.20x").
type MonthlyData struct {
	Spend         string             `json:"spend"`
	Roas          string             `json:"roas"`
	Visits        string             `json:"visits"`
	AgencyRevenue string             `json:"agencyRevenue"`
	Plan          WorkPlan           `json:"plan"`
	MetaData      []CampaignLineItem `json:"metaData,omitempty"`
}

// DefaultMonthlyData retorna o registro usado quando um período ainda não tem dados
func DefaultMonthlyData() MonthlyData {
	return MonthlyData{
		Spend:         CurrencySymbol + "0",
		Roas:          "0x",
		Visits:        "0",
		AgencyRevenue: CurrencySymbol + "0",
		Plan: WorkPlan{
			TargetPosts:      12,
			CompletedPosts:   0,
			TargetVideos:     4,
			CompletedVideos:  0,
			CurrentAdsBudget: CurrencySymbol + "0",
			Status:           PlanStatusLive,
			TotalViews:       "0",
		},
		MetaData: []CampaignLineItem{},
	}
}
