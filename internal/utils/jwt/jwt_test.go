package jwt

import (
	"testing"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		actor     domain.Actor
	}{
		{
			name:      "Customer token",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			actor:     domain.Actor{UserID: 12345, Role: domain.RoleCustomer},
		},
		{
			name:      "Technician token",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			actor:     domain.Actor{UserID: 99999, Role: domain.RoleTechnician},
		},
		{
			name:      "Admin token",
			secretKey: "secret",
			tokenTTL:  time.Hour,
			actor:     domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.actor)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			actor, err := m.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.actor, actor)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	customer := domain.Actor{UserID: 12345, Role: domain.RoleCustomer}

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(customer)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(customer)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Unknown role", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(domain.Actor{UserID: 5, Role: "GUEST"})
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("Missing user", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(domain.Actor{Role: domain.RoleAdmin})
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// Токен с alg=none
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NSwicm9sZSI6IkFETUlOIn0.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(domain.Actor{UserID: 12345, Role: domain.RoleCustomer})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
