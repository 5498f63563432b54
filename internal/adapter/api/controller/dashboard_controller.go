package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/domain/dashboard"
	expensedomain "github.com/petrini31/bike-garage-manager/internal/domain/expense"
	goaldomain "github.com/petrini31/bike-garage-manager/internal/domain/goal"
	revenuedomain "github.com/petrini31/bike-garage-manager/internal/domain/revenue"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// dashboardPageSize limita a carga das consultas do resumo
const dashboardPageSize = 10000

// DashboardController gerencia as requisições do painel financeiro
type DashboardController struct {
	orderRepo       serviceorder.Repository
	expenseRepo     expensedomain.Repository
	revenueRepo     revenuedomain.Repository
	revenueGoalRepo goaldomain.RevenueGoalRepository
	logger          logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(
	orderRepo serviceorder.Repository,
	expenseRepo expensedomain.Repository,
	revenueRepo revenuedomain.Repository,
	revenueGoalRepo goaldomain.RevenueGoalRepository,
	logger logger.Logger,
) *DashboardController {
	return &DashboardController{
		orderRepo:       orderRepo,
		expenseRepo:     expenseRepo,
		revenueRepo:     revenueRepo,
		revenueGoalRepo: revenueGoalRepo,
		logger:          logger,
	}
}

// Summary retorna o resumo financeiro e operacional da oficina
// @Summary Resumo do painel
// @Description Retorna faturamento realizado, receitas manuais, gastos, lucro líquido, meta mensal e contagem de O.S. por situação
// @Tags dashboard
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/resumo [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	orders, err := c.orderRepo.List(ctx, dashboardPageSize, 0)
	if err != nil {
		c.logger.Error("erro ao carregar ordens de serviço para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar resumo", err.Error()))
		return
	}

	expenses, err := c.expenseRepo.List(ctx, dashboardPageSize, 0)
	if err != nil {
		c.logger.Error("erro ao carregar gastos para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar resumo", err.Error()))
		return
	}

	revenues, err := c.revenueRepo.List(ctx, dashboardPageSize, 0)
	if err != nil {
		c.logger.Error("erro ao carregar receitas manuais para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar resumo", err.Error()))
		return
	}

	revenueGoal, err := c.revenueGoalRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar metas de faturamento para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar resumo", err.Error()))
		return
	}

	summary := dashboard.BuildSummary(orders, expenses, revenues, revenueGoal)

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
