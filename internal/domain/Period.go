package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

var ErrInvalidPeriod = errors.New("período inválido, use o formato YYYY-MM")

// Period identifica um mês do histórico no formato YYYY-MM
type Period struct {
	Year  int
	Month int
}

// ParsePeriod converte uma chave "YYYY-MM" (mês com dois dígitos) em Period
func ParsePeriod(key string) (Period, error) {
	if len(key) != 7 || key[4] != '-' {
		return Period{}, ErrInvalidPeriod
	}

	year, err := strconv.Atoi(key[:4])
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}

	month, err := strconv.Atoi(key[5:])
	if err != nil || month < 1 || month > 12 {
		return Period{}, ErrInvalidPeriod
	}

	return Period{Year: year, Month: month}, nil
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

func (p Period) YearKey() string {
	return fmt.Sprintf("%04d", p.Year)
}

func (p Period) MonthKey() string {
	return fmt.Sprintf("%02d", p.Month)
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// FirstDay retorna o primeiro dia do mês
func (p Period) FirstDay(loc *time.Location) time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
}

// LastDay retorna o último dia do mês
func (p Period) LastDay(loc *time.Location) time.Time {
	return p.FirstDay(loc).AddDate(0, 1, -1)
}

// Previous retorna o período n meses antes
func (p Period) Previous(n int) Period {
	return PeriodOf(p.FirstDay(time.UTC).AddDate(0, -n, 0))
}

// SortPeriods ordena cronologicamente
func SortPeriods(periods []Period) {
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})
}
