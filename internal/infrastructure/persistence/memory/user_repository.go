package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/domain/repositories"
	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
)

// UserRepository é uma implementação em memória de
// repositories.UserRepository, útil para testes e execução local sem
// banco. Thread-safe. Ids seguem o formato hex de ObjectID.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entities.User // key = id
	byEmail map[string]string         // email -> id
}

// NewUserRepository cria um repositório vazio
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*entities.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := user.Email.String()
	if _, exists := r.byEmail[email]; exists {
		return errors.ErrEmailAlreadyExists
	}

	stored := *user
	stored.ID = primitive.NewObjectID().Hex()
	stored.FavouriteGames = user.Games()

	r.users[stored.ID] = &stored
	r.byEmail[email] = stored.ID

	user.ID = stored.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *r.users[id]
	return &copied, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, update repositories.UserUpdate) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	if update.Email != nil && *update.Email != user.Email.String() {
		if _, exists := r.byEmail[*update.Email]; exists {
			return nil, errors.ErrEmailAlreadyExists
		}
		delete(r.byEmail, user.Email.String())
		r.byEmail[*update.Email] = id
		user.Email = valueobjects.MustEmail(*update.Email)
	}
	if update.UserName != nil {
		user.UserName = *update.UserName
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.ProfileImage != nil {
		user.ProfileImage = *update.ProfileImage
	}
	if update.FavouriteGames != nil {
		user.FavouriteGames = update.FavouriteGames
	}

	copied := *user
	return &copied, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	delete(r.users, id)
	delete(r.byEmail, user.Email.String())

	copied := *user
	return &copied, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		// mesma projeção aplicada pela query no banco real
		copied.PasswordHash = ""
		copied.Role = ""
		users = append(users, &copied)
	}
	return users, nil
}
