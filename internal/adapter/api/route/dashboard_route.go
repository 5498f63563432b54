package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterDashboardRoutes registra as rotas do painel financeiro
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController, jwtService *auth.JWTService) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(auth.Middleware(jwtService))
	{
		dashboard.GET("/resumo", dashboardController.Summary)
	}
}
