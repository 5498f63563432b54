package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController, jwtService *auth.JWTService) {
	products := r.Group("/produtos")
	products.Use(auth.Middleware(jwtService))
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}
}
