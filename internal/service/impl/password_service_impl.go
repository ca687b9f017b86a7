package impl

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceImpl hashes passwords with bcrypt over the peppered
// plaintext. The pepper is a server-held secret independent of bcrypt's
// per-digest salt; a leaked table alone is not enough to brute-force
// offline. Cost is the tunable work factor.
type PasswordServiceImpl struct {
	pepper []byte
	cost   int
}

func NewPasswordServiceBcrypt(pepper string, cost int) *PasswordServiceImpl {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceImpl{pepper: []byte(pepper), cost: cost}
}

func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword(p.peppered(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compares in constant time; bcrypt owns the timing discipline.
func (p *PasswordServiceImpl) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), p.peppered(password)) == nil
}

func (p *PasswordServiceImpl) peppered(password string) []byte {
	return append([]byte(password), p.pepper...)
}
