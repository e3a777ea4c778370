package reporting

import (
	"strconv"

	"github.com/vfg2006/agency-os-api/internal/domain"
)

// MaxPoints é o tamanho máximo da série de ROAS devolvida para os gráficos
const MaxPoints = 12

var monthNames = []string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Totals são as somas brutas acumuladas durante a agregação
type Totals struct {
	Spend           int64   `json:"spend"`
	Revenue         int64   `json:"revenue"`
	Views           int64   `json:"views"`
	Visits          int64   `json:"visits"`
	RoasSum         float64 `json:"roasSum"`
	RoasCount       int     `json:"roasCount"`
	TargetPosts     int     `json:"targetPosts"`
	CompletedPosts  int     `json:"completedPosts"`
	TargetVideos    int     `json:"targetVideos"`
	CompletedVideos int     `json:"completedVideos"`
	Entries         int     `json:"entries"`
}

// AggregateResult é o resumo de KPIs de um intervalo de meses
type AggregateResult struct {
	Spend   string    `json:"spend"`
	Revenue string    `json:"revenue"`
	Roas    string    `json:"roas"`
	Views   string    `json:"views"`
	Visits  string    `json:"visits"`
	Points  []float64 `json:"points"`
	Totals  Totals    `json:"totals"`
}

type WorkPlanProgress struct {
	PostsRatio  float64 `json:"postsRatio"`
	VideosRatio float64 `json:"videosRatio"`
}

// MonthlyPoint é um mês da série exibida no gráfico da visão geral
type MonthlyPoint struct {
	Month   string  `json:"month"`
	MonthID string  `json:"monthId"`
	Roas    float64 `json:"roas"`
	Spend   int64   `json:"spend"`
	Clients int     `json:"clients"`
}

// ClientOverview resume o mês mais recente de um cliente
type ClientOverview struct {
	ClientID string             `json:"clientId"`
	Name     string             `json:"name"`
	Period   string             `json:"period,omitempty"`
	Data     domain.MonthlyData `json:"data"`
	Progress WorkPlanProgress   `json:"progress"`
}

// Engine calcula os indicadores do histórico mensal. Nunca retorna erro:
// valores malformados contam como zero.
type Engine struct {
	formatter *Formatter
}

func NewEngine(formatter *Formatter) *Engine {
	return &Engine{formatter: formatter}
}

func (e *Engine) Formatter() *Formatter {
	return e.formatter
}

// Aggregate soma os meses de year entre startMonth e endMonth (inclusive, "01".."12").
// O intervalo não atravessa anos.
func (e *Engine) Aggregate(ledgers []domain.ClientLedger, year, startMonth, endMonth string) AggregateResult {
	var totals Totals
	points := make([]float64, 0)

	for _, ledger := range ledgers {
		for _, period := range ledger.Periods() {
			if !inRange(period, year, startMonth, endMonth) {
				continue
			}

			data := ledger.MonthlyHistory[period.Key()]

			totals.Entries++
			totals.Spend += ParseAmount(data.Spend)
			totals.Revenue += ParseAmount(data.AgencyRevenue)
			totals.Views += ParseAmount(data.Plan.TotalViews)
			totals.Visits += ParseAmount(data.Visits)
			totals.TargetPosts += data.Plan.TargetPosts
			totals.CompletedPosts += data.Plan.CompletedPosts
			totals.TargetVideos += data.Plan.TargetVideos
			totals.CompletedVideos += data.Plan.CompletedVideos

			roas := ParseRatio(data.Roas)
			if roas > 0 {
				totals.RoasSum += roas
				totals.RoasCount++
			}

			points = append(points, roas)
		}
	}

	if len(points) > MaxPoints {
		points = points[len(points)-MaxPoints:]
	}

	return AggregateResult{
		Spend:   e.formatter.Currency(totals.Spend),
		Revenue: e.formatter.Currency(totals.Revenue),
		Roas:    averageRoas(totals),
		Views:   e.formatter.Number(totals.Views),
		Visits:  e.formatter.Number(totals.Visits),
		Points:  points,
		Totals:  totals,
	}
}

// MonthlySeries monta um ponto por mês do intervalo, com o gasto somado e o ROAS
// médio dos clientes que têm dados naquele mês.
func (e *Engine) MonthlySeries(ledgers []domain.ClientLedger, year, startMonth, endMonth string) []MonthlyPoint {
	start, _ := strconv.Atoi(startMonth)
	end, _ := strconv.Atoi(endMonth)
	y, _ := strconv.Atoi(year)

	series := make([]MonthlyPoint, 0, len(monthNames))
	for month := 1; month <= len(monthNames); month++ {
		if month < start || month > end {
			continue
		}

		period := domain.Period{Year: y, Month: month}
		point := MonthlyPoint{
			Month:   monthNames[month-1],
			MonthID: period.MonthKey(),
		}

		var roasSum float64
		for _, ledger := range ledgers {
			data, ok := ledger.MonthlyHistory[period.Key()]
			if !ok {
				continue
			}

			roasSum += ParseRatio(data.Roas)
			point.Spend += ParseAmount(data.Spend)
			point.Clients++
		}

		if point.Clients > 0 {
			point.Roas = roasSum / float64(point.Clients)
		}

		series = append(series, point)
	}

	return series
}

// Overview retorna o mês mais recente do cliente com o progresso do plano
func (e *Engine) Overview(ledger domain.ClientLedger) ClientOverview {
	overview := ClientOverview{
		ClientID: ledger.ID,
		Name:     ledger.Name,
		Data:     domain.DefaultMonthlyData(),
	}

	if period, ok := ledger.LatestPeriod(); ok {
		overview.Period = period.Key()
		overview.Data = ledger.MonthlyHistory[period.Key()]
	}

	overview.Progress = Progress(overview.Data)
	return overview
}

// Progress calcula concluído / max(meta, 1). O valor pode passar de 1.
func Progress(data domain.MonthlyData) WorkPlanProgress {
	return WorkPlanProgress{
		PostsRatio:  float64(data.Plan.CompletedPosts) / float64(max(data.Plan.TargetPosts, 1)),
		VideosRatio: float64(data.Plan.CompletedVideos) / float64(max(data.Plan.TargetVideos, 1)),
	}
}

func inRange(period domain.Period, year, startMonth, endMonth string) bool {
	if period.YearKey() != year {
		return false
	}

	month := period.MonthKey()
	return startMonth <= month && month <= endMonth
}

func averageRoas(totals Totals) string {
	if totals.RoasCount == 0 {
		return "0x"
	}
	return Ratio(totals.RoasSum / float64(totals.RoasCount))
}
