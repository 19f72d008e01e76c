package errors

import "errors"

// Business errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Token errors
// Qualquer falha estrutural ou de assinatura vira ErrInvalidToken,
// sem detalhar qual verificação falhou.
var (
	ErrInvalidToken = errors.New("invalid token")
)
