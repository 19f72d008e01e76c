package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/handlers/dto"
	"github.com/rafabene/gamehub-backend/internal/services"
)

const identityKey = "identity"

// IdentityFromContext retorna a identidade resolvida pelo RequireAuth
func IdentityFromContext(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entities.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// RequireAuth extrai o bearer token do header Authorization, resolve a
// identidade contra o repositório e a coloca no contexto da requisição.
// Header ausente/malformado, token inválido ou usuário inexistente
// respondem 401 sem executar o handler.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if stderrors.Is(err, errors.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// bearerToken extrai o token de um header "Authorization: Bearer <token>"
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
