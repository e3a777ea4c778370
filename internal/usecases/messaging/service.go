package messaging

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/pkg/log"
	"github.com/vfg2006/agency-os-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrMissingRequiredData = errors.New("nome, e-mail e mensagem são obrigatórios")
	ErrInvalidEmail        = errors.New("e-mail inválido")
	ErrInvalidStatus       = errors.New("status inválido, use new, read ou replied")
	ErrMessageNotFound     = errors.New("mensagem não encontrada")
)

// SubmitRequest é o corpo enviado pelo formulário de contato
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Inbox interface {
	Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, messageID string, status domain.MessageStatus) (*domain.ContactMessage, error)
	Delete(ctx context.Context, messageID string) error
}

type Service struct {
	messageRepo repository.MessageRepository
	now         func() time.Time
	mu          sync.Mutex
}

func NewService(messageRepo repository.MessageRepository) Inbox {
	return &Service{
		messageRepo: messageRepo,
		now:         time.Now,
	}
}

// Submit grava a mensagem no topo da lista com status new
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, ErrMissingRequiredData
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	message := domain.ContactMessage{
		ID:      "m_" + utils.GenerateID(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Date:    s.now().UTC().Format(time.RFC3339),
		Status:  domain.MessageStatusNew,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]domain.ContactMessage, 0, len(messages)+1)
	updated = append(updated, message)
	updated = append(updated, messages...)

	if err := s.messageRepo.SaveMessages(ctx, updated); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("message_id", message.ID).Info("messaging: nova mensagem de contato")

	return &message, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messageRepo.ListMessages(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, messageID string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}

	var found *domain.ContactMessage
	updated := make([]domain.ContactMessage, len(messages))
	for i, message := range messages {
		if message.ID == messageID {
			message.Status = status
			found = &message
		}
		updated[i] = message
	}

	if found == nil {
		return nil, ErrMessageNotFound
	}

	if err := s.messageRepo.SaveMessages(ctx, updated); err != nil {
		return nil, err
	}

	return found, nil
}

func (s *Service) Delete(ctx context.Context, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.ContactMessage, 0, len(messages))
	for _, message := range messages {
		if message.ID != messageID {
			remaining = append(remaining, message)
		}
	}

	if len(remaining) == len(messages) {
		return ErrMessageNotFound
	}

	return s.messageRepo.SaveMessages(ctx, remaining)
}
