package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
	"github.com/vfg2006/agency-os-api/pkg/docpatch"
	"github.com/vfg2006/agency-os-api/pkg/log"
	"github.com/vfg2006/agency-os-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Authenticator interface {
	LoginUser(ctx context.Context, username, password string) (string, *domain.UserAccount, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.UserAccount, error)
	ListUsers(ctx context.Context) ([]domain.UserAccount, error)
	CreateUser(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.UserAccount, error)
	DeleteUser(ctx context.Context, requesterID, userID string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	mu       sync.Mutex
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginUser confere usuário e senha. Qualquer falha de credencial gera o mesmo erro,
// sem indicar se o usuário existe.
func (s *Service) LoginUser(ctx context.Context, username, password string) (string, *domain.UserAccount, error) {
	if username == "" || password == "" {
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuários")
	}

	var found *domain.UserAccount
	for i := range users {
		if users[i].Username == username && passwordMatches(users[i].Password, password) {
			found = &users[i]
			break
		}
	}

	if found == nil {
		log.ForContext(ctx).WithField("username", username).Warn("auth: tentativa de login inválida")
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	token, err := s.generateJWT(found)
	if err != nil {
		return "", nil, NewUserAuthError(err, apiErrors.ErrInternalServer, found.ID, "Erro ao gerar token de autenticação")
	}

	return token, sanitize(*found), nil
}

// passwordMatches aceita hashes bcrypt e as senhas em texto dos documentos legados
func passwordMatches(stored, password string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored != "" && stored == password
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}

func (s *Service) generateJWT(user *domain.UserAccount) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		ClientID: user.ClientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.UserAccount, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuários")
	}

	for _, user := range users {
		if user.ID == userID {
			return sanitize(user), nil
		}
	}

	return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
}

// ListUsers retorna os usuários sem as senhas
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserAccount, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuários")
	}

	result := make([]domain.UserAccount, 0, len(users))
	for _, user := range users {
		result = append(result, *sanitize(user))
	}

	return result, nil
}

func (s *Service) CreateUser(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || user.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if user.Role == "" {
		user.Role = domain.UserRoleClient
	}

	if err := validateRole(user.Role, user.ClientID); err != nil {
		return nil, err
	}

	if user.Role != domain.UserRoleClient {
		user.ClientID = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuários")
	}

	for _, existing := range users {
		if existing.Username == user.Username {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Nome de usuário já cadastrado")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.ID = "u_" + utils.GenerateID()
	user.Password = string(hashedPassword)
	if user.Permissions == (domain.UserPermissions{}) {
		user.Permissions = domain.UserPermissions{CanViewPerformance: true}
	}

	if err := s.userRepo.SaveUsers(ctx, append(users, *user)); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return sanitize(*user), nil
}

func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.UserAccount, error) {
	if req.ID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuários")
	}

	if req.Username != nil {
		for _, existing := range users {
			if existing.ID != req.ID && existing.Username == *req.Username {
				return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Nome de usuário já cadastrado")
			}
		}
	}

	var hashedPassword string
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashedPassword = string(hash)
	}

	var updated *domain.UserAccount
	var applyErr error
	users = docpatch.ReplaceByID(users, req.ID, func(u domain.UserAccount) string { return u.ID }, func(u domain.UserAccount) domain.UserAccount {
		if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
			u.Username = strings.TrimSpace(*req.Username)
		}
		if hashedPassword != "" {
			u.Password = hashedPassword
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.ClientID != nil {
			u.ClientID = *req.ClientID
		}
		if req.Permissions != nil {
			u.Permissions = *req.Permissions
		}
		if u.Role != domain.UserRoleClient {
			u.ClientID = ""
		}

		applyErr = validateRole(u.Role, u.ClientID)
		updated = &u
		return u
	})

	if updated == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, req.ID, "")
	}

	if applyErr != nil {
		return nil, applyErr
	}

	if err := s.userRepo.SaveUsers(ctx, users); err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, req.ID, "Erro ao atualizar usuário")
	}

	return sanitize(*updated), nil
}

func (s *Service) DeleteUser(ctx context.Context, requesterID, userID string) error {
	if requesterID == userID {
		return NewUserAuthError(ErrCannotDeleteSelf, apiErrors.ErrInvalidRequest, userID, "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuários")
	}

	remaining := make([]domain.UserAccount, 0, len(users))
	for _, user := range users {
		if user.ID != userID {
			remaining = append(remaining, user)
		}
	}

	if len(remaining) == len(users) {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	if err := s.userRepo.SaveUsers(ctx, remaining); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao excluir usuário")
	}

	return nil
}

func validateRole(role domain.UserRole, clientID string) error {
	if !role.IsValid() {
		return NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, string(role))
	}

	if role == domain.UserRoleClient && clientID == "" {
		return NewAuthError(ErrMissingClient, apiErrors.ErrMissingRequiredData, "")
	}

	return nil
}

func sanitize(user domain.UserAccount) *domain.UserAccount {
	user.Password = ""
	return &user
}
