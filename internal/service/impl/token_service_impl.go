package impl

import (
	"errors"
	"strconv"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

type TokenConfig struct {
	Issuer     string
	SigningKey []byte        // HS256 secret
	TTL        time.Duration // 0 disables the exp claim
}

// TokenServiceImpl mints and verifies self-verifying HS256 tokens. There is
// no session table; validity is signature + (optional) expiry only.
type TokenServiceImpl struct {
	cfg    TokenConfig
	parser *jwt.Parser
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		cfg:    cfg,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (t *TokenServiceImpl) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   t.cfg.Issuer,
			Subject:  strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.cfg.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.cfg.TTL))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.SigningKey)
}

// Verify is pure: no I/O, no lookup. The distinct failure causes exist for
// logging; the session guard collapses them before they reach a client.
func (t *TokenServiceImpl) Verify(tokenStr string) (*service.Claims, error) {
	claims := &service.Claims{}
	tok, err := t.parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrBadSignature
		}
	}
	if !tok.Valid {
		return nil, ErrBadSignature
	}
	if claims.Issuer != "" && t.cfg.Issuer != "" && claims.Issuer != t.cfg.Issuer {
		return nil, ErrBadSignature
	}
	return claims, nil
}
