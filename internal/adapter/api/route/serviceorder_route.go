package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterServiceOrderRoutes registra as rotas do módulo de ordens de serviço
func RegisterServiceOrderRoutes(r *gin.RouterGroup, orderController *controller.ServiceOrderController, jwtService *auth.JWTService) {
	orders := r.Group("/ordens-servico")
	orders.Use(auth.Middleware(jwtService))
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/:id", orderController.Get)
		orders.PUT("/:id", orderController.Update)
		orders.DELETE("/:id", orderController.Delete)

		// Operações de fluxo
		orders.PATCH("/:id/status", orderController.UpdateStatus)
		orders.PATCH("/:id/cancelar", orderController.Cancel)
	}
}
