package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidClaims возвращается для подписанного токена без пользователя или с неизвестной ролью
var ErrInvalidClaims = errors.New("invalid token claims")

// Claims представляет JWT claims с ID и ролью пользователя.
// Токены выпускает внешний сервис аутентификации.
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager управляет генерацией и валидацией JWT токенов
type Manager struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Generate генерирует новый JWT токен для актора
func (m *Manager) Generate(actor domain.Actor) (string, error) {
	claims := Claims{
		UserID: actor.UserID,
		Role:   actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate валидирует JWT токен и возвращает актора
func (m *Manager) Validate(tokenString string) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})

	if err != nil {
		return domain.Actor{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID <= 0 || !claims.Role.Valid() {
		return domain.Actor{}, ErrInvalidClaims
	}

	return domain.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
