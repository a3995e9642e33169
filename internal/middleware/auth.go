package middleware

import (
	"net/http"
	"strings"

	"Hive_Social/internal/pkg"
	"Hive_Social/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   &pkg.AppError{Code: pkg.CodeUnauthorized, Message: msg},
	})
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		tokenStr := parts[1]
		userRep := &redis.UserRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		// redis校验是否是当前有效会话
		originToken, err := userRep.GetUserToken(c.Request.Context(), claims.UserID)
		if err != nil || originToken != tokenStr {
			abortUnauthorized(c, "account has been logged in elsewhere")
			return
		}

		// 校验通过后更新过期时间
		if err = userRep.ExtendUserToken(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   &pkg.AppError{Code: pkg.CodeStore, Message: err.Error()},
			})
			return
		}

		// 注入 user_id
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
