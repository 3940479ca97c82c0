package middleware

import (
	"context"
	"net/http"
	"strings"

	"folkers/internal/auth"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// WithAuth проверяет bearer-токен и кладёт пользователя в контекст.
// Отсутствующий, повреждённый или истёкший токен — терминальный 401,
// до хендлера запрос не доходит.
func WithAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				// Malformed/Expired/SignatureInvalid снаружи неразличимы
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, auth.UserFromClaims(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole отклоняет запросы пользователей с ролью ниже минимальной.
// Ставится после WithAuth.
func RequireRole(min auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !auth.Authorize(user, min) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromContext возвращает аутентифицированного пользователя запроса.
func GetUserFromContext(ctx context.Context) (auth.AuthUser, bool) {
	user, ok := ctx.Value(userContextKey).(auth.AuthUser)
	return user, ok
}

// extractBearer принимает только схему Bearer: голый токен
// в Authorization отклоняется.
func extractBearer(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return token
}
