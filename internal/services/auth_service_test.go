package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/security"
	"github.com/rafabene/gamehub-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		ctx         context.Context
		repo        *memory.UserRepository
		userService *services.UserService
		authService *services.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = memory.NewUserRepository()
		hasher := security.NewBcryptHasher()
		tokens := security.NewJWTManager("test-secret")
		userService = services.NewUserService(repo, hasher, noopLogger{})
		authService = services.NewAuthService(repo, hasher, tokens, noopLogger{})

		_, err := userService.CreateUser(ctx, services.CreateUserInput{
			UserName: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Login", func() {
		It("retorna o usuário e um token para credenciais corretas", func() {
			user, token, err := authService.Login(ctx, "alice@example.com", "secret123")

			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(user.UserName).To(Equal("alice"))
		})

		It("rejeita senha incorreta", func() {
			_, _, err := authService.Login(ctx, "alice@example.com", "wrong")

			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("aceita o email exatamente como foi digitado no cadastro", func() {
			_, err := userService.CreateUser(ctx, services.CreateUserInput{
				UserName: "bob",
				Email:    "Bob@Example.COM",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())

			user, token, err := authService.Login(ctx, "Bob@Example.COM", "secret123")

			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(user.Email.String()).To(Equal("bob@example.com"))
		})

		It("rejeita email malformado com o mesmo erro de credenciais", func() {
			_, _, err := authService.Login(ctx, "not-an-email", "secret123")

			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejeita email desconhecido com o mesmo erro de senha incorreta", func() {
			_, _, unknownEmailErr := authService.Login(ctx, "nobody@example.com", "secret123")
			_, _, wrongPasswordErr := authService.Login(ctx, "alice@example.com", "wrong")

			Expect(unknownEmailErr).To(MatchError(errors.ErrInvalidCredentials))
			Expect(wrongPasswordErr).To(MatchError(unknownEmailErr))
		})
	})

	Describe("Authenticate", func() {
		var token string

		BeforeEach(func() {
			var err error
			_, token, err = authService.Login(ctx, "alice@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
		})

		It("resolve a identidade a partir de um token válido", func() {
			user, err := authService.Authenticate(ctx, token)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("alice@example.com"))
		})

		It("rejeita token inválido", func() {
			_, err := authService.Authenticate(ctx, "not-a-token")

			Expect(err).To(MatchError(errors.ErrUnauthorized))
		})

		It("rejeita token de usuário já removido", func() {
			user, err := authService.Authenticate(ctx, token)
			Expect(err).NotTo(HaveOccurred())

			_, err = userService.DeleteUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = authService.Authenticate(ctx, token)
			Expect(err).To(MatchError(errors.ErrUnauthorized))
		})

		It("reflete o role atual do repositório, não o do token", func() {
			user, err := authService.Authenticate(ctx, token)
			Expect(err).NotTo(HaveOccurred())

			admin := entities.RoleAdmin
			_, err = userService.UpdateUser(ctx, user.ID, services.UpdateUserInput{Role: &admin})
			Expect(err).NotTo(HaveOccurred())

			refreshed, err := authService.Authenticate(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(refreshed.IsAdmin()).To(BeTrue())
		})
	})
})
