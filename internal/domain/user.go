package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleClient   UserRole = "CLIENT"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEmployee, UserRoleClient:
		return true
	}
	return false
}

type UserPermissions struct {
	CanViewPerformance bool `json:"canViewPerformance"`
	CanEditTasks       bool `json:"canEditTasks"`
	CanUploadAssets    bool `json:"canUploadAssets"`
	CanViewFinancials  bool `json:"canViewFinancials"`
}

type UserAccount struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Password    string          `json:"password,omitempty"`
	Role        UserRole        `json:"role"`
	ClientID    string          `json:"clientId,omitempty"`
	Permissions UserPermissions `json:"permissions"`
}

type UpdateUserRequest struct {
	ID          string           `json:"id"`
	Username    *string          `json:"username"`
	Password    *string          `json:"password"`
	Role        *UserRole        `json:"role"`
	ClientID    *string          `json:"clientId"`
	Permissions *UserPermissions `json:"permissions"`
}

type Claims struct {
	UserID   string
	Username string
	Role     UserRole
	ClientID string
	jwt.RegisteredClaims
}

// DefaultUsers é a lista usada quando a coleção de usuários ainda não existe
func DefaultUsers() []UserAccount {
	return []UserAccount{
		{
			ID:       "admin1",
			Username: "admin",
			Password: "123",
			Role:     UserRoleAdmin,
			Permissions: UserPermissions{
				CanViewPerformance: true,
				CanEditTasks:       true,
				CanUploadAssets:    true,
				CanViewFinancials:  true,
			},
		},
	}
}
