package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"folkers/internal/model"
)

// Ошибки проверки токена. Наружу все они сводятся к 401,
// но внутри различимы.
var (
	ErrTokenMalformed   = errors.New("auth: malformed token")
	ErrTokenExpired     = errors.New("auth: token expired")
	ErrSignatureInvalid = errors.New("auth: token signature mismatch")
)

// Claims — полезная нагрузка JWT: идентификатор, имя и роль пользователя.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenService выпускает и проверяет JWT-токены сессий.
// Состояния на сервере нет: отзыв возможен только по истечению срока.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен для пользователя со сроком действия now+ttl.
func (s *TokenService) Issue(user *model.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		Username: user.Username,
		Role:     user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify проверяет подпись и срок действия за один шаг.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignatureInvalid
	default:
		return nil, ErrTokenMalformed
	}
}
