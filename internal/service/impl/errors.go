package impl

import "errors"

var (
	ErrEmptyPassword  = errors.New("empty password")
	ErrTokenMalformed = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrTokenExpired   = errors.New("token expired")
)
