package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// userIDKey ключ контекста для ID пользователя
type userIDKey struct{}

// userIDHeader доверенный заголовок от API-гейтвея
// Сервис внутренний: аутентификацию выполняет гейтвей, сюда приходит
// уже проверенный идентификатор
const userIDHeader = "X-User-ID"

// Auth извлекает ID пользователя из доверенного заголовка и кладет его
// в контекст запроса. Запросы без заголовка пропускаются дальше:
// обязательность проверяют сами обработчики через GetUserID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(userIDHeader); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil && userID > 0 {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
