package middleware

import (
	"net/http"
	"strings"

	"Collabenote/pkg/context"
	"Collabenote/pkg/jwt"
	"Collabenote/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxEmail, claims.Email)
		c.Set(context.CtxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// AdminAuth 管理端路由：在 Auth 之后追加管理员声明校验
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !context.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}
		c.Next()
	}
}
