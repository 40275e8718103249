package middleware

import (
	"net/http"
	"strings"

	"booklyn_backend/internal/auth"
	"booklyn_backend/internal/models"
	"booklyn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrUnauthorized})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			// Просроченный токен отдаем отдельным кодом, чтобы клиент сделал refresh
			if err == auth.ErrTokenExpired {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrTokenExpired})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrInvalidToken})
			return
		}

		// Сохраняем claims в контекст
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles - middleware для проверки нескольких возможных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{Error: apperrors.ErrForbidden})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || !roleSet[models.UserRole(roleStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{Error: apperrors.ErrForbidden})
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
