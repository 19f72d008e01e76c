package security

import (
	"strings"
	"testing"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	t.Run("hash e verify fecham o ciclo", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if !hasher.Verify("secret123", hash) {
			t.Error("esperava Verify == true para a senha correta")
		}
	})

	t.Run("senha errada não verifica", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if hasher.Verify("wrong", hash) {
			t.Error("esperava Verify == false para senha incorreta")
		}
	})

	t.Run("hash nunca contém a senha em texto puro", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if strings.Contains(hash, "secret123") {
			t.Error("hash não pode conter a senha em texto puro")
		}
	})

	t.Run("hashes da mesma senha diferem pelo salt", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		second, err := hasher.Hash("secret123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if first == second {
			t.Error("esperava hashes diferentes para a mesma senha")
		}
	})
}
