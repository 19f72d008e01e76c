package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/gamehub-backend/internal/domain/ports"
)

// hashCost é o custo fixo do bcrypt
const hashCost = 12

// BcryptHasher implementa ports.PasswordHasher com bcrypt
type BcryptHasher struct{}

// NewBcryptHasher cria um novo BcryptHasher
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{}
}

// Hash gera o hash bcrypt da senha. A senha em texto puro nunca é
// retornada, logada ou armazenada.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compara a senha em texto puro com o hash armazenado
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
