package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
)

// Middleware valida o token Bearer e adiciona as claims ao contexto
func Middleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
			return
		}

		// Verificar se o header começa com "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", ""))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_login", claims.Login)
		c.Set("user_type", claims.UserType)

		c.Next()
	}
}

// AdminOnly exige que o usuário autenticado seja administrador
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_type") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso restrito a administradores", ""))
			return
		}
		c.Next()
	}
}
