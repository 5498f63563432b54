package route

import (
	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
)

// RegisterExpenseRoutes registra as rotas do módulo de gastos
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController, jwtService *auth.JWTService) {
	expenses := r.Group("/gastos")
	expenses.Use(auth.Middleware(jwtService))
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.List)
		expenses.PUT("/:id", expenseController.Update)
		expenses.DELETE("/:id", expenseController.Delete)
	}
}
