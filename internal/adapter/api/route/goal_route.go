package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterGoalRoutes registra as rotas do módulo de metas
func RegisterGoalRoutes(r *gin.RouterGroup, goalController *controller.GoalController, jwtService *auth.JWTService) {
	goals := r.Group("/metas")
	goals.Use(auth.Middleware(jwtService))
	{
		// As rotas de faturamento precisam vir antes das rotas com :id
		goals.GET("/faturamento", goalController.GetRevenueGoal)
		goals.PUT("/faturamento", goalController.SaveRevenueGoal)

		goals.POST("", goalController.Create)
		goals.GET("", goalController.List)
		goals.PUT("/:id", goalController.Update)
		goals.DELETE("/:id", goalController.Delete)
	}
}
