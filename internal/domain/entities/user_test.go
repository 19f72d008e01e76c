package entities

import (
	"testing"

	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
)

func TestUserIsAdmin(t *testing.T) {
	t.Run("role admin é admin", func(t *testing.T) {
		user := &User{Role: RoleAdmin}
		if !user.IsAdmin() {
			t.Error("esperava IsAdmin() == true para role admin")
		}
	})

	t.Run("role user não é admin", func(t *testing.T) {
		user := &User{Role: RoleUser}
		if user.IsAdmin() {
			t.Error("esperava IsAdmin() == false para role user")
		}
	})

	// a verificação é igualdade estrita, não substring
	t.Run("role parecido com admin não é admin", func(t *testing.T) {
		user := &User{Role: Role("administrator")}
		if user.IsAdmin() {
			t.Error("esperava IsAdmin() == false para role 'administrator'")
		}
	})
}

func TestUserGames(t *testing.T) {
	t.Run("nunca retorna nil", func(t *testing.T) {
		user := &User{}
		games := user.Games()
		if games == nil {
			t.Fatal("esperava slice vazio, obteve nil")
		}
		if len(games) != 0 {
			t.Errorf("esperava slice vazio, obteve %v", games)
		}
	})
}

func TestRoleOrDefault(t *testing.T) {
	t.Run("vazio vira user", func(t *testing.T) {
		if Role("").OrDefault() != RoleUser {
			t.Error("esperava RoleUser como default")
		}
	})

	t.Run("admin permanece admin", func(t *testing.T) {
		if RoleAdmin.OrDefault() != RoleAdmin {
			t.Error("esperava RoleAdmin inalterado")
		}
	})
}

func TestUserValidate(t *testing.T) {
	email, _ := valueobjects.NewEmail("a@x.com")

	t.Run("usuário completo é válido", func(t *testing.T) {
		user := &User{UserName: "alice", Email: email, Role: RoleUser}
		if err := user.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("user_name é obrigatório", func(t *testing.T) {
		user := &User{Email: email, Role: RoleUser}
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("email é obrigatório", func(t *testing.T) {
		user := &User{UserName: "alice", Role: RoleUser}
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("role desconhecido é inválido", func(t *testing.T) {
		user := &User{UserName: "alice", Email: email, Role: Role("root")}
		if err := user.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}
