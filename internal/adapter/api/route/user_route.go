package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterUserRoutes registra as rotas do módulo de usuários.
// Todas exigem perfil de administrador.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController, jwtService *auth.JWTService) {
	users := r.Group("/usuarios")
	users.Use(auth.Middleware(jwtService), auth.AdminOnly())
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Delete)
	}
}
