package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterRevenueRoutes registra as rotas de receitas manuais
func RegisterRevenueRoutes(r *gin.RouterGroup, revenueController *controller.RevenueController, jwtService *auth.JWTService) {
	revenues := r.Group("/receitas")
	revenues.Use(auth.Middleware(jwtService))
	{
		revenues.POST("", revenueController.Create)
		revenues.GET("", revenueController.List)
		revenues.DELETE("/:id", revenueController.Delete)
	}
}
