// Importa um arquivo de backup exportado pelo painel para o PostgreSQL.
//
//	go run ./infrastructure/migration/script tilki_yedek_01_03_2024.json
//
// Senhas em texto puro dos documentos antigos são convertidas para bcrypt antes da gravação.
package main

import (
	"context"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/infrastructure/store/pgstore"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
	"github.com/vfg2006/agency-os-api/pkg/log"
	"github.com/vfg2006/agency-os-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type migrationStats struct {
	HashedPasswords int
	FixedMessages   int
	FixedClients    int
}

func readBackup(path string) (*domain.BackupPayload, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var payload domain.BackupPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

// prepareBackup normaliza os documentos antigos: senhas sem hash, mensagens sem status
// e clientes sem histórico
func prepareBackup(payload *domain.BackupPayload) (migrationStats, error) {
	var stats migrationStats

	for i := range payload.Users {
		user := &payload.Users[i]
		if user.Password == "" || strings.HasPrefix(user.Password, "$2") {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return stats, err
		}
		user.Password = string(hash)
		stats.HashedPasswords++
	}

	for i := range payload.Messages {
		message := &payload.Messages[i]
		if !message.Status.IsValid() {
			message.Status = domain.MessageStatusNew
			stats.FixedMessages++
		}
		if message.ID == "" {
			message.ID = "m_" + utils.GenerateID()
			stats.FixedMessages++
		}
	}

	for i := range payload.Clients {
		client := &payload.Clients[i]
		if client.MonthlyHistory == nil {
			client.MonthlyHistory = map[string]domain.MonthlyData{}
			stats.FixedClients++
		}
		if client.Assets == nil {
			client.Assets = []domain.Asset{}
		}
	}

	return stats, nil
}

func main() {
	log.Configure("info", os.Stdout)

	if len(os.Args) < 2 {
		logrus.Fatal("Uso: script <arquivo-de-backup.json>")
	}

	startTime := time.Now()
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	payload, err := readBackup(os.Args[1])
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler arquivo de backup")
	}

	stats, err := prepareBackup(payload)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao preparar backup")
	}

	logrus.WithFields(logrus.Fields{
		"clients":          len(payload.Clients),
		"users":            len(payload.Users),
		"messages":         len(payload.Messages),
		"hashed_passwords": stats.HashedPasswords,
		"fixed_messages":   stats.FixedMessages,
		"fixed_clients":    stats.FixedClients,
	}).Info("Backup lido e normalizado")

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar schema")
	}

	collections := pgstore.New(conn)
	archiver := archiving.NewService(
		repository.NewContentRepository(collections),
		repository.NewClientRepository(collections),
		repository.NewUserRepository(collections),
		repository.NewMessageRepository(collections),
		repository.NewBackupSnapshotRepository(conn),
	)

	if err := archiver.Restore(ctx, payload, true); err != nil {
		logrus.WithError(err).Fatal("ERRO ao importar backup")
	}

	snapshot, err := archiver.CreateSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Warn("AVISO: não foi possível criar o snapshot inicial")
	} else {
		logrus.WithField("snapshot_id", snapshot.ID).Info("Snapshot inicial criado")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
