package auth

import (
	"errors"
	"time"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID int64
	Email  string
	Name   string

	ExpiresAt time.Time
}

// Identity son los datos del usuario que viajan firmados en el token.
type Identity struct {
	UserID int64
	Email  string
	Name   string
}

// Token emitido al hacer login.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}
