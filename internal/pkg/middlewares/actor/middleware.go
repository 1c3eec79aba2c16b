package actor

import (
	"context"
	"net/http"
	"strings"

	"dashboard/internal/entities"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type ctxKey struct{}

// Middleware кладет в контекст пользователя из заголовков авторизующего прокси.
// Пустой id не отклоняется здесь: анонимный пользователь получает отказ в тех операциях, где он важен.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := entities.User{
				ID:   strings.TrimSpace(r.Header.Get(HeaderUserID)),
				Role: entities.ParseRole(r.Header.Get(HeaderUserRole)),
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func WithUser(ctx context.Context, user entities.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// FromContext возвращает нулевого пользователя, если middleware не отработал.
func FromContext(ctx context.Context) entities.User {
	user, _ := ctx.Value(ctxKey{}).(entities.User)
	return user
}
