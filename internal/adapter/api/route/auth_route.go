package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := r.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		// Dados do usuário do token (requer autenticação)
		authRouter.GET("/me", auth.Middleware(jwtService), authController.Me)
	}
}
