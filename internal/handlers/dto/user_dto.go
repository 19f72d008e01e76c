package dto

import (
	"github.com/rafabene/gamehub-backend/internal/domain/entities"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	UserName       string   `json:"user_name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=5"`
	Role           string   `json:"role" binding:"omitempty,oneof=user admin"`
	ProfileImage   string   `json:"profile_image" binding:"omitempty"`
	FavouriteGames []string `json:"favourite_games"`
}

// UpdateUserRequest representa um update parcial de usuário
type UpdateUserRequest struct {
	UserName       *string  `json:"user_name" binding:"omitempty,min=1"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Password       *string  `json:"password" binding:"omitempty,min=5"`
	Role           *string  `json:"role" binding:"omitempty,oneof=user admin"`
	ProfileImage   *string  `json:"profile_image" binding:"omitempty"`
	FavouriteGames []string `json:"favourite_games"`
}

// OutputUser é a única projeção de usuário exposta para fora.
// password e role nunca aparecem aqui.
type OutputUser struct {
	ID             string   `json:"id"`
	UserName       string   `json:"user_name"`
	Email          string   `json:"email"`
	FavouriteGames []string `json:"favourite_games"`
	ProfileImage   string   `json:"profile_image"`
}

// MessageResponse é o envelope simples {message}
type MessageResponse struct {
	Message string `json:"message"`
}

// UserMessageResponse é o envelope {message, user}
type UserMessageResponse struct {
	Message string     `json:"message"`
	User    OutputUser `json:"user"`
}

// LoginResponse é o envelope de login bem-sucedido
type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    OutputUser `json:"user"`
}

// ToOutputUser converte uma entidade User para a projeção pública
func ToOutputUser(user *entities.User) OutputUser {
	return OutputUser{
		ID:             user.ID,
		UserName:       user.UserName,
		Email:          user.Email.String(),
		FavouriteGames: user.Games(),
		ProfileImage:   user.ProfileImage,
	}
}

// ToOutputUsers converte uma lista de entidades User para a projeção pública
func ToOutputUsers(users []*entities.User) []OutputUser {
	responses := make([]OutputUser, len(users))
	for i, user := range users {
		responses[i] = ToOutputUser(user)
	}
	return responses
}

// ToDeletedOutputUser é a projeção usada na resposta de remoção:
// imagem e jogos saem zerados
func ToDeletedOutputUser(user *entities.User) OutputUser {
	return OutputUser{
		ID:             user.ID,
		UserName:       user.UserName,
		Email:          user.Email.String(),
		FavouriteGames: []string{},
		ProfileImage:   "",
	}
}
