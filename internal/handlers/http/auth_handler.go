package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/handlers/dto"
	"github.com/rafabene/gamehub-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.ValidationMessage(err)})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Mensagem única: não revela se o email ou a senha estava errada
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Incorrect username/password"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToOutputUser(user),
	})
}
