package auth

import "github.com/pkg/errors"

var (
	PrincipalNotFoundErr   = errors.New("principal not found")
	InvalidCredentialsErr  = errors.New("invalid credentials")
	InvalidRefreshTokenErr = errors.New("invalid or expired refresh token")
)
