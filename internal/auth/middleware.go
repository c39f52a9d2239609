package auth

import (
	"context"
	"net/http"

	"storefront-compute/internal/logger"
)

// Ключ контекста для утверждений пользователя
type contextKey string

const UserContextKey contextKey = "user"

// AuthMiddleware проверяет JWT токен в заголовке Authorization
// и кладет утверждения пользователя в контекст запроса
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := ExtractTokenFromHeader(r)
		if err != nil {
			logger.LogINFO("Отклонен неавторизованный запрос: " + r.URL.Path)
			http.Error(w, "Не авторизован: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := ValidateToken(tokenString)
		if err != nil {
			logger.LogINFO("Отклонен запрос с недействительным токеном: " + r.URL.Path)
			http.Error(w, "Не авторизован: "+err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext извлекает утверждения пользователя из контекста
func GetUserFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	return claims, ok
}

// RequireAuth возвращает ID пользователя из контекста запроса.
// Запрос должен был пройти через AuthMiddleware.
func RequireAuth(r *http.Request) (int64, error) {
	claims, ok := GetUserFromContext(r.Context())
	if !ok {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
