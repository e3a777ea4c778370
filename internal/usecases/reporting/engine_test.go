package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

func month(spend, roas, visits, revenue, views string) domain.MonthlyData {
	data := domain.DefaultMonthlyData()
	data.Spend = spend
	data.Roas = roas
	data.Visits = visits
	data.AgencyRevenue = revenue
	data.Plan.TotalViews = views
	return data
}

func TestEngine_Aggregate(t *testing.T) {
	engine := NewEngine(NewFormatter("tr"))

	tests := []struct {
		name     string
		ledgers  []domain.ClientLedger
		year     string
		start    string
		end      string
		validate func(t *testing.T, result AggregateResult)
	}{
		{
			name: "Soma dois meses de um cliente",
			ledgers: []domain.ClientLedger{{
				ID: "c1",
				MonthlyHistory: map[string]domain.MonthlyData{
					"2024-02": month("₺2.000", "4.00x", "200", "₺500", "10.000"),
					"2024-01": month("₺1.000", "2.00x", "100", "₺250", "5.000"),
				},
			}},
			year: "2024", start: "01", end: "12",
			validate: func(t *testing.T, result AggregateResult) {
				assert.Equal(t, "₺3.000", result.Spend)
				assert.Equal(t, "₺750", result.Revenue)
				assert.Equal(t, "3.00x", result.Roas)
				assert.Equal(t, "15.000", result.Views)
				assert.Equal(t, "300", result.Visits)
				assert.Equal(t, []float64{2, 4}, result.Points)
				assert.Equal(t, 2, result.Totals.Entries)
				assert.Equal(t, 24, result.Totals.TargetPosts)
			},
		},
		{
			name: "ROAS zero fica fora da média mas o gasto conta",
			ledgers: []domain.ClientLedger{{
				MonthlyHistory: map[string]domain.MonthlyData{
					"2024-01": month("₺1.000", "0x", "0", "₺0", "0"),
					"2024-02": month("₺500", "3.00x", "0", "₺0", "0"),
				},
			}},
			year: "2024", start: "01", end: "12",
			validate: func(t *testing.T, result AggregateResult) {
				assert.Equal(t, "₺1.500", result.Spend)
				assert.Equal(t, "3.00x", result.Roas)
				assert.Equal(t, []float64{0, 3}, result.Points)
				assert.Equal(t, 1, result.Totals.RoasCount)
			},
		},
		{
			name: "Intervalo filtra por ano e meses",
			ledgers: []domain.ClientLedger{{
				MonthlyHistory: map[string]domain.MonthlyData{
					"2023-12": month("₺9.999", "9x", "0", "₺0", "0"),
					"2024-03": month("₺100", "1x", "0", "₺0", "0"),
					"2024-04": month("₺200", "2x", "0", "₺0", "0"),
					"2024-05": month("₺300", "3x", "0", "₺0", "0"),
				},
			}},
			year: "2024", start: "04", end: "05",
			validate: func(t *testing.T, result AggregateResult) {
				assert.Equal(t, "₺500", result.Spend)
				assert.Equal(t, []float64{2, 3}, result.Points)
			},
		},
		{
			name: "Sem dados devolve zeros",
			ledgers: []domain.ClientLedger{
				{ID: "vazio"},
				{ID: "outro", MonthlyHistory: map[string]domain.MonthlyData{}},
			},
			year: "2024", start: "01", end: "12",
			validate: func(t *testing.T, result AggregateResult) {
				assert.Equal(t, "₺0", result.Spend)
				assert.Equal(t, "0x", result.Roas)
				assert.Equal(t, "0", result.Views)
				assert.Empty(t, result.Points)
			},
		},
		{
			name: "Valores malformados contam como zero",
			ledgers: []domain.ClientLedger{{
				MonthlyHistory: map[string]domain.MonthlyData{
					"2024-01":   month("", "abc", "n/a", "₺", ""),
					"lixo":      month("₺1.000", "5x", "0", "₺0", "0"),
					"2024-13":   month("₺1.000", "5x", "0", "₺0", "0"),
					"2024-1":    month("₺1.000", "5x", "0", "₺0", "0"),
					"2024-02-1": month("₺1.000", "5x", "0", "₺0", "0"),
				},
			}},
			year: "2024", start: "01", end: "12",
			validate: func(t *testing.T, result AggregateResult) {
				assert.Equal(t, "₺0", result.Spend)
				assert.Equal(t, "0x", result.Roas)
				assert.Equal(t, 1, result.Totals.Entries)
			},
		},
		{
			name: "Pontos seguem a ordem dos clientes",
			ledgers: []domain.ClientLedger{
				{MonthlyHistory: map[string]domain.MonthlyData{"2024-05": month("₺0", "5x", "0", "₺0", "0")}},
				{MonthlyHistory: map[string]domain.MonthlyData{"2024-01": month("₺0", "1x", "0", "₺0", "0")}},
			},
			year: "2024", start: "01", end: "12",
			validate: func(t *testing.T, result AggregateResult) {
				assert.Equal(t, []float64{5, 1}, result.Points)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, engine.Aggregate(tt.ledgers, tt.year, tt.start, tt.end))
		})
	}
}

func TestEngine_Aggregate_LimitaPontos(t *testing.T) {
	engine := NewEngine(NewFormatter("tr"))

	var ledgers []domain.ClientLedger
	for c := 0; c < 2; c++ {
		history := map[string]domain.MonthlyData{}
		for m := 1; m <= 12; m++ {
			history[fmt.Sprintf("2024-%02d", m)] = month("₺10", fmt.Sprintf("%d.00x", c*100+m), "0", "₺0", "0")
		}
		ledgers = append(ledgers, domain.ClientLedger{MonthlyHistory: history})
	}

	result := engine.Aggregate(ledgers, "2024", "01", "12")

	require.Len(t, result.Points, MaxPoints)
	assert.Equal(t, float64(101), result.Points[0])
	assert.Equal(t, float64(112), result.Points[11])
	assert.Equal(t, "₺240", result.Spend)
	assert.Equal(t, 24, result.Totals.RoasCount)
}

func TestEngine_MonthlySeries(t *testing.T) {
	engine := NewEngine(NewFormatter("tr"))

	ledgers := []domain.ClientLedger{
		{MonthlyHistory: map[string]domain.MonthlyData{
			"2024-01": month("₺1.000", "2x", "0", "₺0", "0"),
			"2024-02": month("₺500", "4x", "0", "₺0", "0"),
		}},
		{MonthlyHistory: map[string]domain.MonthlyData{
			"2024-01": month("₺3.000", "4x", "0", "₺0", "0"),
		}},
	}

	series := engine.MonthlySeries(ledgers, "2024", "01", "03")
	require.Len(t, series, 3)

	assert.Equal(t, "Ocak", series[0].Month)
	assert.Equal(t, "01", series[0].MonthID)
	assert.Equal(t, int64(4000), series[0].Spend)
	assert.InDelta(t, 3.0, series[0].Roas, 0.0001)
	assert.Equal(t, 2, series[0].Clients)

	assert.Equal(t, "Şubat", series[1].Month)
	assert.InDelta(t, 4.0, series[1].Roas, 0.0001)
	assert.Equal(t, 1, series[1].Clients)

	assert.Equal(t, "Mart", series[2].Month)
	assert.Zero(t, series[2].Roas)
	assert.Zero(t, series[2].Clients)
}

func TestEngine_Overview(t *testing.T) {
	engine := NewEngine(NewFormatter("tr"))

	latest := month("₺2.000", "4x", "0", "₺0", "0")
	latest.Plan.CompletedPosts = 18

	overview := engine.Overview(domain.ClientLedger{
		ID:   "c1",
		Name: "TILKI",
		MonthlyHistory: map[string]domain.MonthlyData{
			"2023-12": month("₺1.000", "2x", "0", "₺0", "0"),
			"2024-01": latest,
			"2023-02": month("₺3.000", "1x", "0", "₺0", "0"),
		},
	})

	assert.Equal(t, "2024-01", overview.Period)
	assert.Equal(t, "₺2.000", overview.Data.Spend)
	assert.InDelta(t, 1.5, overview.Progress.PostsRatio, 0.0001)

	empty := engine.Overview(domain.ClientLedger{ID: "c2"})
	assert.Empty(t, empty.Period)
	assert.Equal(t, domain.DefaultMonthlyData(), empty.Data)
}

func TestProgress(t *testing.T) {
	data := domain.DefaultMonthlyData()
	data.Plan.TargetPosts = 0
	data.Plan.CompletedPosts = 3
	data.Plan.TargetVideos = 4
	data.Plan.CompletedVideos = 2

	progress := Progress(data)
	assert.InDelta(t, 3.0, progress.PostsRatio, 0.0001)
	assert.InDelta(t, 0.5, progress.VideosRatio, 0.0001)
}
