package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/handlers/dto"
	"github.com/rafabene/gamehub-backend/internal/handlers/middleware"
	"github.com/rafabene/gamehub-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Check godoc
// @Summary      Server liveness check
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /users/check [get]
func (h *UserHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Server up"})
}

// CheckToken godoc
// @Summary      Validate the bearer token
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /users/token [get]
func (h *UserHandler) CheckToken(c *gin.Context) {
	// a identidade já foi resolvida pelo middleware
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Token valid"})
}

// ListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.OutputUser
// @Failure      500  {object}  dto.MessageResponse
// @Router       /users/ [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOutputUsers(users))
}

// GetUser godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dto.OutputUser
// @Failure      404  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOutputUser(user))
}

// CreateUser godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserRequest  true  "User data"
// @Success      200   {object}  dto.UserMessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /users/ [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.ValidationMessage(err)})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		UserName:       req.UserName,
		Email:          req.Email,
		Password:       req.Password,
		Role:           entities.Role(req.Role),
		ProfileImage:   req.ProfileImage,
		FavouriteGames: req.FavouriteGames,
	})
	if err != nil {
		// inclui email duplicado: falha genérica, como qualquer erro do banco
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "User creation failed"})
		return
	}

	c.JSON(http.StatusOK, dto.UserMessageResponse{
		Message: "User created",
		User:    dto.ToOutputUser(user),
	})
}

// UpdateUser godoc
// @Summary      Update the authenticated user
// @Description  Admins may target another user through the /users/{id} form.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpdateUserRequest  true  "Fields to update"
// @Success      200   {object}  dto.UserMessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /users/ [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	// o alvo é o próprio usuário; admin pode apontar outro via :id
	target := actor.ID
	if id := c.Param("id"); id != "" && actor.IsAdmin() {
		target = id
	}

	h.update(c, target, actor.IsAdmin())
}

// UpdateUserAsAdmin godoc
// @Summary      Update any user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User id"
// @Param        body  body      dto.UpdateUserRequest  true  "Fields to update"
// @Success      200   {object}  dto.UserMessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUserAsAdmin(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok || !actor.IsAdmin() {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	h.update(c, c.Param("id"), true)
}

// update aplica o update parcial sobre o alvo já autorizado.
// allowRole controla se o campo role do payload é aplicado: o caminho
// self-service nunca altera role.
func (h *UserHandler) update(c *gin.Context, target string, allowRole bool) {
	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.ValidationMessage(err)})
		return
	}

	input := services.UpdateUserInput{
		UserName:       req.UserName,
		Email:          req.Email,
		Password:       req.Password,
		ProfileImage:   req.ProfileImage,
		FavouriteGames: req.FavouriteGames,
	}
	if allowRole && req.Role != nil {
		role := entities.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), target, input)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.UserMessageResponse{
		Message: "User updated",
		User:    dto.ToOutputUser(user),
	})
}

// DeleteUser godoc
// @Summary      Delete the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserMessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /users/ [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	// o alvo é sempre a própria identidade, sem override
	h.delete(c, actor.ID)
}

// DeleteUserAsAdmin godoc
// @Summary      Delete any user (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dto.UserMessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUserAsAdmin(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok || !actor.IsAdmin() {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	h.delete(c, c.Param("id"))
}

func (h *UserHandler) delete(c *gin.Context, target string) {
	user, err := h.userService.DeleteUser(c.Request.Context(), target)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.UserMessageResponse{
		Message: "User deleted",
		User:    dto.ToDeletedOutputUser(user),
	})
}
