package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-appmanager/internal/security/authz"
	"go-appmanager/internal/security/jwt"
)

const principalKey = "principal"

// Auth 认证中间件：解析 Bearer token，将 Principal 放入 gin.Context
func Auth(j *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing token"})
			return
		}
		token := strings.TrimSpace(auth[7:])
		claims, err := j.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			return
		}
		c.Set(principalKey, authz.Principal{
			UserID:        claims.UserID,
			MemberID:      claims.MemberID,
			Administrator: claims.Administrator,
			SelfManaged:   claims.SelfManaged,
			Token:         token,
		})
		c.Set("user_id", claims.UserID)
		c.Set("member_id", claims.MemberID)
		c.Next()
	}
}

// PrincipalFrom 取回 Auth 放入的 Principal；未认证路由返回零值
func PrincipalFrom(c *gin.Context) authz.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(authz.Principal); ok {
			return p
		}
	}
	return authz.Principal{}
}
