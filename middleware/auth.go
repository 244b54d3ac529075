package middleware

import (
	"net/http"
	"strings"
	"time"

	"Umami/pkg/context"
	"Umami/pkg/jwt"
	"Umami/pkg/response"

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
		// 快过期的 token 顺手续一个新的
		if jwt.ShouldRotate(claims, 60*time.Second) {
			newToken, _ := jwt.GenerateToken(secret, claims.UserID, "access", time.Hour)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}

// OptionalAuth 公共读接口用：带合法 token 就识别身份，没带照常放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
					c.Set(context.CtxUserID, claims.UserID)
				}
			}
		}
		c.Next()
	}
}
