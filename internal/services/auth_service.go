package services

import (
	"context"
	stderrors "errors"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/domain/ports"
	"github.com/rafabene/gamehub-backend/internal/domain/repositories"
	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de autenticação e resolução de identidade
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifica as credenciais e emite um token com as claims {id, role}.
// Email desconhecido, email malformado e senha incorreta produzem o mesmo
// errors.ErrInvalidCredentials, sem distinção.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	// a busca usa a mesma normalização aplicada no cadastro
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "id", user.ID)
	return user, token, nil
}

// Authenticate resolve a identidade a partir de um token.
// As claims servem apenas para localizar o usuário: id e role vêm de
// uma consulta fresca ao repositório, não do token. Se o usuário
// referenciado não existe mais, o token deixa de valer.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidToken) {
			return nil, errors.ErrUnauthorized
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUnauthorized
	}

	return user, nil
}
