package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterTagRoutes registra as rotas do módulo de tags
func RegisterTagRoutes(r *gin.RouterGroup, tagController *controller.TagController, jwtService *auth.JWTService) {
	tags := r.Group("/tags")
	tags.Use(auth.Middleware(jwtService))
	{
		tags.POST("", tagController.Create)
		tags.GET("", tagController.List)
		tags.PUT("/:id", tagController.Update)
		tags.DELETE("/:id", tagController.Delete)
	}
}
