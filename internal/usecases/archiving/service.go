package archiving

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrConfirmationRequired = errors.New("confirmação obrigatória para restaurar o backup")
	ErrInvalidBackup        = errors.New("arquivo de backup inválido: content e users são obrigatórios")
	ErrSnapshotsDisabled    = errors.New("snapshots de backup exigem o banco Postgres habilitado")
	ErrSnapshotNotFound     = errors.New("snapshot não encontrado")
)

type Archiver interface {
	Export(ctx context.Context) (*domain.BackupPayload, error)
	Restore(ctx context.Context, payload *domain.BackupPayload, confirm bool) error
	CreateSnapshot(ctx context.Context) (*domain.BackupSnapshot, error)
	ListSnapshots(ctx context.Context) ([]*domain.BackupSnapshot, error)
	RestoreSnapshot(ctx context.Context, snapshotID int64, confirm bool) error
	PruneSnapshots(ctx context.Context, retentionDays int) (int64, error)
}

type Service struct {
	contentRepo  repository.ContentRepository
	clientRepo   repository.ClientRepository
	userRepo     repository.UserRepository
	messageRepo  repository.MessageRepository
	snapshotRepo repository.BackupSnapshotRepository
	now          func() time.Time
	mu           sync.Mutex
}

// NewService aceita snapshotRepo nil quando o Postgres não está habilitado;
// nesse caso apenas exportação e restauração manual funcionam.
func NewService(
	contentRepo repository.ContentRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	snapshotRepo repository.BackupSnapshotRepository,
) Archiver {
	return &Service{
		contentRepo:  contentRepo,
		clientRepo:   clientRepo,
		userRepo:     userRepo,
		messageRepo:  messageRepo,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// Export lê as quatro coleções. As senhas dos usuários fazem parte do arquivo
// para que a restauração reproduza os acessos.
func (s *Service) Export(ctx context.Context) (*domain.BackupPayload, error) {
	content, err := s.contentRepo.GetContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler conteúdo do site: %w", err)
	}

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler clientes: %w", err)
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler usuários: %w", err)
	}

	messages, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler mensagens: %w", err)
	}

	return &domain.BackupPayload{
		Content:   content,
		Clients:   clients,
		Users:     users,
		Messages:  messages,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Version:   domain.BackupVersion,
	}, nil
}

// Restore sobrescreve todas as coleções com o conteúdo do backup
func (s *Service) Restore(ctx context.Context, payload *domain.BackupPayload, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	if payload == nil || payload.Content == nil || payload.Users == nil {
		return ErrInvalidBackup
	}

	clients := payload.Clients
	if clients == nil {
		clients = []domain.ClientLedger{}
	}

	messages := payload.Messages
	if messages == nil {
		messages = []domain.ContactMessage{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.contentRepo.SaveContent(ctx, payload.Content); err != nil {
		return fmt.Errorf("erro ao restaurar conteúdo do site: %w", err)
	}

	if err := s.clientRepo.SaveClients(ctx, clients); err != nil {
		return fmt.Errorf("erro ao restaurar clientes: %w", err)
	}

	if err := s.userRepo.SaveUsers(ctx, payload.Users); err != nil {
		return fmt.Errorf("erro ao restaurar usuários: %w", err)
	}

	if err := s.messageRepo.SaveMessages(ctx, messages); err != nil {
		return fmt.Errorf("erro ao restaurar mensagens: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"clients":  len(clients),
		"users":    len(payload.Users),
		"messages": len(messages),
		"version":  payload.Version,
	}).Warn("archiving: backup restaurado")

	return nil
}

func (s *Service) CreateSnapshot(ctx context.Context) (*domain.BackupSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsDisabled
	}

	payload, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return s.snapshotRepo.CreateSnapshot(ctx, body)
}

func (s *Service) ListSnapshots(ctx context.Context) ([]*domain.BackupSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsDisabled
	}

	return s.snapshotRepo.ListSnapshots(ctx)
}

func (s *Service) RestoreSnapshot(ctx context.Context, snapshotID int64, confirm bool) error {
	if s.snapshotRepo == nil {
		return ErrSnapshotsDisabled
	}

	if !confirm {
		return ErrConfirmationRequired
	}

	snapshot, err := s.snapshotRepo.GetSnapshot(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return ErrSnapshotNotFound
		}
		return err
	}

	var payload domain.BackupPayload
	if err := json.Unmarshal(snapshot.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	return s.Restore(ctx, &payload, true)
}

// PruneSnapshots remove snapshots mais antigos que retentionDays
func (s *Service) PruneSnapshots(ctx context.Context, retentionDays int) (int64, error) {
	if s.snapshotRepo == nil {
		return 0, ErrSnapshotsDisabled
	}

	if retentionDays <= 0 {
		return 0, nil
	}

	before := s.now().UTC().AddDate(0, 0, -retentionDays)
	return s.snapshotRepo.DeleteSnapshotsBefore(ctx, before)
}
