package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// OrDefault retorna RoleUser quando o role está vazio
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleUser
	}
	return r
}
