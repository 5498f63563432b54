package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// StatusController gerencia as requisições relacionadas a status de O.S.
type StatusController struct {
	statusRepo serviceorder.StatusRepository
	logger     logger.Logger
}

// NewStatusController cria uma nova instância de StatusController
func NewStatusController(statusRepo serviceorder.StatusRepository, logger logger.Logger) *StatusController {
	return &StatusController{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

// Create cria um novo status de O.S.
// @Summary Criar status
// @Description Cria um novo status configurável de ordem de serviço
// @Tags status-os
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status body dto.StatusRequest true "Dados do status"
// @Success 201 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /status-os [post]
func (c *StatusController) Create(ctx *gin.Context) {
	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	status, err := serviceorder.NewStatus(req.Name, req.Color, req.Position)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar status", err.Error()))
		return
	}

	if err := c.statusRepo.Create(ctx, status); err != nil {
		if err == repository.ErrStatusDuplicate {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "status já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar status no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStatusResponse(status))
}

// List retorna todos os status ordenados
// @Summary Listar status
// @Description Retorna todos os status de O.S. na ordem de exibição
// @Tags status-os
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.StatusResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /status-os [get]
func (c *StatusController) List(ctx *gin.Context) {
	statuses, err := c.statusRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar status", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatusListResponse(statuses))
}

// Update atualiza um status
// @Summary Atualizar status
// @Description Atualiza nome, cor e posição de um status
// @Tags status-os
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do status"
// @Param status body dto.StatusRequest true "Dados do status"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /status-os/{id} [put]
func (c *StatusController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	status, err := c.statusRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrStatusNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "status não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar status", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar status", err.Error()))
		return
	}

	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "nome do status não pode ser vazio", ""))
		return
	}

	status.Name = req.Name
	if req.Color != "" {
		status.Color = req.Color
	}
	status.Position = req.Position

	if err := c.statusRepo.Update(ctx, status); err != nil {
		c.logger.Error("erro ao atualizar status no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatusResponse(status))
}

// Delete remove um status
// @Summary Excluir status
// @Description Remove um status que não esteja em uso por nenhuma O.S.
// @Tags status-os
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /status-os/{id} [delete]
func (c *StatusController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.statusRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrStatusNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "status não encontrado", err.Error()))
			return
		}
		if err == repository.ErrStatusInUse {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "status em uso", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir status", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status excluído com sucesso", nil))
}
