package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// Errores esperados: ErrTokenExpired, ErrTokenInvalid.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma tokens para una identidad ya autenticada.
type TokenIssuer interface {
	CreateToken(id Identity) (Token, error)
}
