package entities

import (
	"errors"

	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// DefaultProfileImage é a imagem de perfil usada quando nenhuma é informada
const DefaultProfileImage = "https://i.imgur.com/2WZtVXx.png"

// User representa um usuário do sistema
type User struct {
	ID             string
	UserName       string
	Email          valueobjects.Email
	PasswordHash   string
	Role           Role
	ProfileImage   string
	FavouriteGames []string
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Games retorna a lista de jogos favoritos, nunca nil
func (u *User) Games() []string {
	if u.FavouriteGames == nil {
		return []string{}
	}
	return u.FavouriteGames
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.UserName == "" {
		return errors.New("user_name is required")
	}

	if u.Role != RoleAdmin && u.Role != RoleUser {
		return errors.New("invalid role")
	}

	return nil
}
