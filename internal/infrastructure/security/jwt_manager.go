package security

import (
	stderrors "errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/domain/ports"
)

// tokenClaims é o payload assinado: {id, role}
type tokenClaims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager com HMAC-SHA256.
// Os tokens emitidos não expiram.
type JWTManager struct {
	secret []byte
}

// NewJWTManager cria um JWTManager com o segredo do processo
func NewJWTManager(secret string) ports.TokenManager {
	return &JWTManager{secret: []byte(secret)}
}

// Issue assina um token com as claims {id, role}
func (m *JWTManager) Issue(id string, role entities.Role) (string, error) {
	claims := &tokenClaims{
		ID:   id,
		Role: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida a assinatura do token e retorna as claims.
// Qualquer falha estrutural ou de assinatura resulta no mesmo
// erros.ErrInvalidToken, sem revelar qual verificação falhou.
func (m *JWTManager) Verify(tokenString string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, stderrors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	if claims.ID == "" {
		return nil, errors.ErrInvalidToken
	}

	return &ports.TokenClaims{
		ID:   claims.ID,
		Role: entities.Role(claims.Role),
	}, nil
}
