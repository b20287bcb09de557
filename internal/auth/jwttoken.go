package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExp Время жизни токена по умолчанию.
const TokenExp = time.Hour * 24

type Claims struct {
	jwt.RegisteredClaims
}

// JWTTokenBuilder Создание и проверка JWT-токенов доступа к API (HS256).
type JWTTokenBuilder struct{}

// NewJWTTokenBuilder Конструктор JWTTokenBuilder.
func NewJWTTokenBuilder() *JWTTokenBuilder {
	return &JWTTokenBuilder{}
}

// BuildJWTToken Создание JWT-токена для клиента subject. Если ttl <= 0 - используется TokenExp.
func (b *JWTTokenBuilder) BuildJWTToken(subject string, JWTSecretKey string, ttl time.Duration) (string, error) {
	if JWTSecretKey == "" {
		return "", errors.New("секретный ключ не задан")
	}

	if ttl <= 0 {
		ttl = TokenExp
	}

	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("не удалось подписать токен: %w", err)
	}

	return tokenString, nil
}

// GetClaims Распарсивание и проверка JWT-токена.
func (b *JWTTokenBuilder) GetClaims(tokenString, JWTSecretKey string) (*Claims, error) {
	claims := &Claims{}

	// распарсиваем токен, проверяя на метод подписи
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неверный метод подписи: %v", t.Header["alg"])
		}
		return []byte(JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("токен недействителен")
	}

	return claims, nil
}
