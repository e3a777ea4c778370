package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate lê datas no formato YYYY-MM-DD. Texto vazio devolve nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data %q fora do formato YYYY-MM-DD: %w", dateStr, err)
	}

	return &date, nil
}

// BackupFileName monta o nome do arquivo de backup no formato tilki_yedek_DD_MM_YYYY.json
func BackupFileName(t time.Time) string {
	return fmt.Sprintf("tilki_yedek_%02d_%02d_%d.json", t.Day(), int(t.Month()), t.Year())
}
