package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	goaldomain "github.com/petrini31/bike-garage-manager/internal/domain/goal"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// GoalController gerencia as requisições relacionadas a metas
type GoalController struct {
	goalRepo        goaldomain.Repository
	revenueGoalRepo goaldomain.RevenueGoalRepository
	logger          logger.Logger
}

// NewGoalController cria uma nova instância de GoalController
func NewGoalController(goalRepo goaldomain.Repository, revenueGoalRepo goaldomain.RevenueGoalRepository, logger logger.Logger) *GoalController {
	return &GoalController{
		goalRepo:        goalRepo,
		revenueGoalRepo: revenueGoalRepo,
		logger:          logger,
	}
}

// Create cria uma nova meta
// @Summary Criar meta
// @Description Cria uma meta com valor objetivo e período
// @Tags metas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param meta body dto.GoalRequest true "Dados da meta"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metas [post]
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	goal, err := goaldomain.NewGoal(req.Name, req.TargetValue, req.StartDate, req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar meta", err.Error()))
		return
	}
	goal.CurrentValue = req.CurrentValue

	if err := c.goalRepo.Create(ctx, goal); err != nil {
		c.logger.Error("erro ao criar meta no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar meta", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// List retorna a lista de metas
// @Summary Listar metas
// @Description Retorna a lista de metas paginada
// @Tags metas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.GoalListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metas [get]
func (c *GoalController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	goals, err := c.goalRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar metas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar metas", err.Error()))
		return
	}

	total, err := c.goalRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar metas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar metas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(goals, total, page, size))
}

// Update atualiza uma meta
// @Summary Atualizar meta
// @Description Atualiza os dados e o progresso de uma meta
// @Tags metas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da meta"
// @Param meta body dto.GoalRequest true "Dados da meta"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metas/{id} [put]
func (c *GoalController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	goal, err := c.goalRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrGoalNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "meta não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar meta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar meta", err.Error()))
		return
	}

	if err := goal.Update(req.Name, req.TargetValue, req.CurrentValue, req.StartDate, req.EndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar meta", err.Error()))
		return
	}

	if err := c.goalRepo.Update(ctx, goal); err != nil {
		c.logger.Error("erro ao atualizar meta no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar meta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// Delete remove uma meta
// @Summary Excluir meta
// @Description Remove uma meta do sistema
// @Tags metas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da meta"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metas/{id} [delete]
func (c *GoalController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.goalRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrGoalNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "meta não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir meta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir meta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("meta excluída com sucesso", nil))
}

// GetRevenueGoal retorna as metas de faturamento vigentes
// @Summary Buscar metas de faturamento
// @Description Retorna as metas de faturamento mensal e anual da oficina
// @Tags metas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.RevenueGoalResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metas/faturamento [get]
func (c *GoalController) GetRevenueGoal(ctx *gin.Context) {
	rg, err := c.revenueGoalRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao buscar metas de faturamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar metas de faturamento", err.Error()))
		return
	}

	if rg == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "metas de faturamento não configuradas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueGoalResponse(rg))
}

// SaveRevenueGoal grava as metas de faturamento, substituindo as anteriores
// @Summary Gravar metas de faturamento
// @Description Define as metas de faturamento mensal e anual da oficina
// @Tags metas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param metas body dto.RevenueGoalRequest true "Metas de faturamento"
// @Success 200 {object} dto.RevenueGoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metas/faturamento [put]
func (c *GoalController) SaveRevenueGoal(ctx *gin.Context) {
	var req dto.RevenueGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	rg, err := goaldomain.NewRevenueGoal(req.MonthlyGoal, req.AnnualGoal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar metas de faturamento", err.Error()))
		return
	}

	if err := c.revenueGoalRepo.Save(ctx, rg); err != nil {
		c.logger.Error("erro ao gravar metas de faturamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar metas de faturamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueGoalResponse(rg))
}
