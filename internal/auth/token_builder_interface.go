package auth

import "time"

// TokenBuilder Интерфейс для создания и парсинга JWT-токенов.
type TokenBuilder interface {
	BuildJWTToken(subject string, JWTSecretKey string, ttl time.Duration) (string, error)
	GetClaims(tokenString, JWTSecretKey string) (*Claims, error)
}
