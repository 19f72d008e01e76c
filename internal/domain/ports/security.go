package ports

import "github.com/rafabene/gamehub-backend/internal/domain/entities"

// PasswordHasher define a interface para hashing de senhas
type PasswordHasher interface {
	// Hash gera o hash irreversível da senha em texto puro
	Hash(plaintext string) (string, error)

	// Verify compara a senha em texto puro com o hash armazenado
	Verify(plaintext, hash string) bool
}

// TokenClaims são os dados carregados dentro de um token assinado
type TokenClaims struct {
	ID   string
	Role entities.Role
}

// TokenManager define a interface para emissão e verificação de tokens
type TokenManager interface {
	// Issue assina um token com as claims {id, role}
	Issue(id string, role entities.Role) (string, error)

	// Verify valida a assinatura e retorna as claims.
	// Qualquer falha retorna errors.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
}
