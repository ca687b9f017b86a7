package service

import (
	"storefront-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set carried by a bearer token. Verification is
// a pure function of token + secret; nothing here is looked up.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*Claims, error)
}
