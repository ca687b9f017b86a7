package service

type PasswordService interface {
	Hash(password string) (digest string, err error)
	Verify(password, digest string) bool
}
