package domain

import "time"

const BackupVersion = "1.0"

// BackupPayload é o arquivo completo exportado pelo painel administrativo
type BackupPayload struct {
	Content   map[string]any   `json:"content"`
	Clients   []ClientLedger   `json:"clients"`
	Users     []UserAccount    `json:"users"`
	Messages  []ContactMessage `json:"messages"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version"`
}

// BackupSnapshot é uma cópia agendada guardada no Postgres
type BackupSnapshot struct {
	ID        int64     `json:"id"`
	Payload   []byte    `json:"-"`
	SizeBytes int       `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
