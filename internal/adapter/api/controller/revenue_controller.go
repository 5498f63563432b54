package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	revenuedomain "github.com/petrini31/bike-garage-manager/internal/domain/revenue"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// RevenueController gerencia as requisições relacionadas a receitas manuais
type RevenueController struct {
	revenueRepo revenuedomain.Repository
	logger      logger.Logger
}

// NewRevenueController cria uma nova instância de RevenueController
func NewRevenueController(revenueRepo revenuedomain.Repository, logger logger.Logger) *RevenueController {
	return &RevenueController{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

// Create registra uma receita manual
// @Summary Criar receita manual
// @Description Registra uma receita fora do fluxo de ordens de serviço
// @Tags receitas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param receita body dto.RevenueRequest true "Dados da receita"
// @Success 201 {object} dto.RevenueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /receitas [post]
func (c *RevenueController) Create(ctx *gin.Context) {
	var req dto.RevenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	revenue, err := revenuedomain.NewManualRevenue(req.Description, req.Value, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar receita", err.Error()))
		return
	}

	if err := c.revenueRepo.Create(ctx, revenue); err != nil {
		c.logger.Error("erro ao criar receita no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRevenueResponse(revenue))
}

// List retorna a lista de receitas manuais
// @Summary Listar receitas manuais
// @Description Retorna a lista de receitas manuais paginada
// @Tags receitas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.RevenueListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /receitas [get]
func (c *RevenueController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	revenues, err := c.revenueRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar receitas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar receitas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueListResponse(revenues, len(revenues), page, size))
}

// Delete remove uma receita manual
// @Summary Excluir receita manual
// @Description Remove uma receita manual do sistema
// @Tags receitas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da receita"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /receitas/{id} [delete]
func (c *RevenueController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.revenueRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrRevenueNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "receita não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir receita", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("receita excluída com sucesso", nil))
}
