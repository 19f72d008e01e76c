package repositories

import (
	"context"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Implementações retornam (nil, nil) quando o registro não existe;
// a camada de serviço traduz para erros de negócio.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// UpdateByID aplica um update parcial e retorna o registro atualizado
	UpdateByID(ctx context.Context, id string, update UserUpdate) (*entities.User, error)

	// DeleteByID remove o registro e retorna o que foi removido
	DeleteByID(ctx context.Context, id string) (*entities.User, error)

	List(ctx context.Context) ([]*entities.User, error)
}

// UserUpdate contém os campos de um update parcial.
// Campos nil não são alterados.
type UserUpdate struct {
	UserName       *string
	Email          *string
	PasswordHash   *string
	Role           *entities.Role
	ProfileImage   *string
	FavouriteGames []string
}

// IsEmpty indica se nenhum campo foi informado
func (u UserUpdate) IsEmpty() bool {
	return u.UserName == nil &&
		u.Email == nil &&
		u.PasswordHash == nil &&
		u.Role == nil &&
		u.ProfileImage == nil &&
		u.FavouriteGames == nil
}
