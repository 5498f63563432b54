package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController, jwtService *auth.JWTService) {
	customers := r.Group("/clientes")
	customers.Use(auth.Middleware(jwtService))
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/search", customerController.Search)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", customerController.Delete)
	}
}
