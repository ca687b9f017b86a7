package service

import (
	"context"

	"storefront-api/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, r dto.RegisterRequest) (*dto.RegisterResponse, error)
	Authenticate(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
}
