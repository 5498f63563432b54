package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterSupplierRoutes registra as rotas do módulo de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController, jwtService *auth.JWTService) {
	suppliers := r.Group("/fornecedores")
	suppliers.Use(auth.Middleware(jwtService))
	{
		suppliers.POST("", supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/:id", supplierController.Get)
		suppliers.PUT("/:id", supplierController.Update)
		suppliers.DELETE("/:id", supplierController.Delete)
	}
}
