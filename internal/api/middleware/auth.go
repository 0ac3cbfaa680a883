// Package middleware HTTP middleware: аутентификация по заголовкам
// и сбор метрик запросов
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/consultly/booking-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	// HeaderUserID идентификатор пользователя, проставляется API-гейтвеем
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя (admin, superadmin)
	HeaderUserRole = "X-User-Role"

	// RoleAdmin консультант, управляет своими сменами, планами и записями
	RoleAdmin = "admin"
	// RoleSuperAdmin доступ к данным любого консультанта
	RoleSuperAdmin = "superadmin"
)

// Auth требует валидный X-User-ID и роль admin или superadmin.
// ID и роль кладутся в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный X-User-ID")
			return
		}

		role := r.Header.Get(HeaderUserRole)
		if role != RoleAdmin && role != RoleSuperAdmin {
			handlers.RespondForbidden(w, "доступ разрешён только администраторам")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RoleFromContext возвращает роль пользователя, положенную Auth middleware
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}

// EffectiveAdminID возвращает ID консультанта, от имени которого выполняется
// запрос: собственный ID из контекста, либо adminId из query - последнее
// доступно только суперадмину
func EffectiveAdminID(r *http.Request) (int64, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		return 0, false
	}

	override := r.URL.Query().Get("adminId")
	if override == "" {
		return userID, true
	}

	role, _ := RoleFromContext(r.Context())
	if role != RoleSuperAdmin {
		return userID, true
	}

	adminID, err := strconv.ParseInt(override, 10, 64)
	if err != nil || adminID <= 0 {
		return 0, false
	}
	return adminID, true
}
