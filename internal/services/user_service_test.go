package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/domain/ports"
	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/security"
	"github.com/rafabene/gamehub-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		hasher  ports.PasswordHasher
		service *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		hasher = security.NewBcryptHasher()
		service = services.NewUserService(memory.NewUserRepository(), hasher, noopLogger{})
	})

	Describe("CreateUser", func() {
		It("aplica os defaults de role, imagem e jogos", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				UserName: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.ProfileImage).To(Equal(entities.DefaultProfileImage))
			Expect(user.FavouriteGames).To(BeEmpty())
			Expect(user.FavouriteGames).NotTo(BeNil())
		})

		It("armazena a senha apenas como hash", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				UserName: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.PasswordHash).NotTo(ContainSubstring("secret123"))
			Expect(hasher.Verify("secret123", user.PasswordHash)).To(BeTrue())
		})

		It("respeita role e imagem informados", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				UserName:     "root",
				Email:        "root@example.com",
				Password:     "secret123",
				Role:         entities.RoleAdmin,
				ProfileImage: "https://example.com/me.png",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsAdmin()).To(BeTrue())
			Expect(user.ProfileImage).To(Equal("https://example.com/me.png"))
		})

		It("rejeita email já cadastrado", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				UserName: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateUser(ctx, services.CreateUserInput{
				UserName: "impostor",
				Email:    "alice@example.com",
				Password: "secret123",
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("rejeita email malformado", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				UserName: "alice",
				Email:    "not-an-email",
				Password: "secret123",
			})

			Expect(err).To(MatchError(valueobjects.ErrInvalidEmail))
		})
	})

	Describe("GetUser", func() {
		It("retorna ErrUserNotFound para id desconhecido", func() {
			_, err := service.GetUser(ctx, "missing")

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("UpdateUser", func() {
		var created *entities.User

		BeforeEach(func() {
			var err error
			created, err = service.CreateUser(ctx, services.CreateUserInput{
				UserName: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("altera apenas os campos informados", func() {
			name := "alice2"
			updated, err := service.UpdateUser(ctx, created.ID, services.UpdateUserInput{UserName: &name})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.UserName).To(Equal("alice2"))
			Expect(updated.Email.String()).To(Equal("alice@example.com"))
			Expect(updated.Role).To(Equal(entities.RoleUser))
		})

		It("re-hasheia a senha quando presente", func() {
			password := "newsecret"
			updated, err := service.UpdateUser(ctx, created.ID, services.UpdateUserInput{Password: &password})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PasswordHash).NotTo(ContainSubstring("newsecret"))
			Expect(hasher.Verify("newsecret", updated.PasswordHash)).To(BeTrue())
			Expect(hasher.Verify("secret123", updated.PasswordHash)).To(BeFalse())
		})

		It("retorna ErrUserNotFound para id desconhecido", func() {
			name := "ghost"
			_, err := service.UpdateUser(ctx, "missing", services.UpdateUserInput{UserName: &name})

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("DeleteUser", func() {
		It("remove e retorna o registro removido", func() {
			created, err := service.CreateUser(ctx, services.CreateUserInput{
				UserName: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := service.DeleteUser(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.ID).To(Equal(created.ID))

			_, err = service.GetUser(ctx, created.ID)
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("retorna ErrUserNotFound para id desconhecido", func() {
			_, err := service.DeleteUser(ctx, "missing")

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})
})
