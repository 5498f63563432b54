package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	expensedomain "github.com/petrini31/bike-garage-manager/internal/domain/expense"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// ExpenseController gerencia as requisições relacionadas a gastos
type ExpenseController struct {
	expenseRepo expensedomain.Repository
	logger      logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expensedomain.Repository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create cria um novo gasto
// @Summary Criar gasto
// @Description Registra um gasto pontual ou recorrente
// @Tags gastos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param gasto body dto.ExpenseRequest true "Dados do gasto"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /gastos [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	expense, err := expensedomain.NewExpense(
		req.Name, req.Description, req.Category, req.Value,
		req.DueDate, req.PaymentDate, req.Recurring, req.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar gasto", err.Error()))
		return
	}

	if err := c.expenseRepo.Create(ctx, expense); err != nil {
		c.logger.Error("erro ao criar gasto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// List retorna a lista de gastos
// @Summary Listar gastos
// @Description Retorna a lista de gastos paginada
// @Tags gastos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /gastos [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	expenses, err := c.expenseRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar gastos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar gastos", err.Error()))
		return
	}

	total, err := c.expenseRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar gastos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar gastos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, total, page, size))
}

// Update atualiza um gasto
// @Summary Atualizar gasto
// @Description Atualiza os dados de um gasto
// @Tags gastos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do gasto"
// @Param gasto body dto.ExpenseRequest true "Dados do gasto"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /gastos/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	expense, err := c.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrExpenseNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "gasto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar gasto", err.Error()))
		return
	}

	err = expense.Update(
		req.Name, req.Description, req.Category, req.Value,
		req.DueDate, req.PaymentDate, req.Recurring, req.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar gasto", err.Error()))
		return
	}

	if err := c.expenseRepo.Update(ctx, expense); err != nil {
		c.logger.Error("erro ao atualizar gasto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// Delete remove um gasto
// @Summary Excluir gasto
// @Description Remove um gasto do sistema
// @Tags gastos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do gasto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /gastos/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.expenseRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrExpenseNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "gasto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("gasto excluído com sucesso", nil))
}
