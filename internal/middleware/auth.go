package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/auth"
	"github.com/mobashirsifat123/charity/internal/model"
)

// ContextClaimsKey gin上下文中令牌载荷的键
const ContextClaimsKey = "claims"

// RequireAuth 身份校验中间件
// 从Authorization头提取bearer令牌并校验，载荷写入上下文
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "未提供访问令牌",
			})
			return
		}

		// 兼容带或不带 "Bearer " 前缀
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "令牌格式不正确",
			})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			message := "无效的令牌"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "令牌已过期"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin 管理员鉴权中间件，必须在RequireAuth之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "需要身份认证",
			})
			return
		}

		if claims.Role != string(model.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "需要管理员权限",
			})
			return
		}

		c.Next()
	}
}

// ClaimsFromContext 从gin上下文取出令牌载荷
func ClaimsFromContext(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
