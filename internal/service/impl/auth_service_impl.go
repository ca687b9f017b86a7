package impl

import (
	"context"
	"errors"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/dto"
	"storefront-api/internal/observability/metrics"
	"storefront-api/internal/service"
	"storefront-api/internal/store"

	"github.com/google/uuid"
)

type AuthServiceImpl struct {
	store     *store.Store
	passwords service.PasswordService
	tokens    service.TokenService

	// dummyDigest is verified against on the unknown-email path so that
	// "no such user" and "wrong password" burn the same hashing cost.
	dummyDigest string
}

func NewAuthServiceImpl(st *store.Store, passwords service.PasswordService, tokens service.TokenService) *AuthServiceImpl {
	dummy, _ := passwords.Hash(uuid.NewString())
	return &AuthServiceImpl{
		store:       st,
		passwords:   passwords,
		tokens:      tokens,
		dummyDigest: dummy,
	}
}

func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) (*dto.RegisterResponse, error) {
	result := "success"
	defer func() {
		metrics.AuthRegistrationsTotal.WithLabelValues(result).Inc()
	}()

	if r.Email == "" || r.Password == "" {
		result = "failure"
		return nil, domain.ErrInvalidInput
	}

	digest, err := a.passwords.Hash(r.Password)
	if err != nil {
		result = "failure"
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := a.store.Users().Create(ctx, u); err != nil {
		result = "failure"
		return nil, err // ErrDuplicateEmail surfaces distinctly
	}

	token, err := a.tokens.Issue(u)
	if err != nil {
		result = "failure"
		return nil, err
	}

	return &dto.RegisterResponse{User: dto.NewUserResponse(u), Token: token}, nil
}

// Authenticate returns a token for a correct email/password pair and a
// uniform ErrInvalidCredentials otherwise. Callers cannot tell which of the
// two was wrong.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	result := "success"
	defer func() {
		metrics.AuthLoginsTotal.WithLabelValues(result).Inc()
	}()

	if email == "" || password == "" {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	u, err := a.store.Users().GetByEmail(ctx, email)
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			a.passwords.Verify(password, a.dummyDigest)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwords.Verify(password, u.PasswordDigest) {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(u)
	if err != nil {
		result = "failure"
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

func (a *AuthServiceImpl) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := a.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

func (a *AuthServiceImpl) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := a.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(u)
	return &resp, nil
}
