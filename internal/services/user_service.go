package services

import (
	"context"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/domain/ports"
	"github.com/rafabene/gamehub-backend/internal/domain/repositories"
	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	UserName       string
	Email          string
	Password       string
	Role           entities.Role
	ProfileImage   string
	FavouriteGames []string
}

// CreateUser cria um novo usuário. A senha é armazenada apenas na forma
// de hash; o role cai para "user" quando não informado.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	// Validar se email já existe
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	profileImage := input.ProfileImage
	if profileImage == "" {
		profileImage = entities.DefaultProfileImage
	}

	user := &entities.User{
		UserName:       input.UserName,
		Email:          email,
		PasswordHash:   hash,
		Role:           input.Role.OrDefault(),
		ProfileImage:   profileImage,
		FavouriteGames: input.FavouriteGames,
	}
	user.FavouriteGames = user.Games()

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista todos os usuários
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUserInput representa um update parcial de usuário.
// Campos nil não são alterados. Role só é preenchido pelo caminho admin.
type UpdateUserInput struct {
	UserName       *string
	Email          *string
	Password       *string
	Role           *entities.Role
	ProfileImage   *string
	FavouriteGames []string
}

// UpdateUser aplica um update parcial e retorna o registro atualizado.
// Se a senha estiver presente ela é re-hasheada antes de persistir.
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	update := repositories.UserUpdate{
		UserName:       input.UserName,
		Role:           input.Role,
		ProfileImage:   input.ProfileImage,
		FavouriteGames: input.FavouriteGames,
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		value := email.String()
		update.Email = &value
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	user, err := s.userRepo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	s.logger.Info("user updated", "id", user.ID)
	return user, nil
}

// DeleteUser remove o usuário e retorna o registro removido.
// A remoção é imediata e definitiva.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	s.logger.Info("user deleted", "id", user.ID)
	return user, nil
}
