package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterStatusRoutes registra as rotas dos status de O.S.
func RegisterStatusRoutes(r *gin.RouterGroup, statusController *controller.StatusController, jwtService *auth.JWTService) {
	statuses := r.Group("/status-os")
	statuses.Use(auth.Middleware(jwtService))
	{
		statuses.POST("", statusController.Create)
		statuses.GET("", statusController.List)
		statuses.PUT("/:id", statusController.Update)
		statuses.DELETE("/:id", statusController.Delete)
	}
}
