package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	tagdomain "github.com/petrini31/bike-garage-manager/internal/domain/tag"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// TagController gerencia as requisições relacionadas a tags
type TagController struct {
	tagRepo tagdomain.Repository
	logger  logger.Logger
}

// NewTagController cria uma nova instância de TagController
func NewTagController(tagRepo tagdomain.Repository, logger logger.Logger) *TagController {
	return &TagController{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// Create cria uma nova tag
// @Summary Criar tag
// @Description Cria uma nova tag para produtos e fornecedores
// @Tags tags
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tag body dto.TagRequest true "Dados da tag"
// @Success 201 {object} dto.TagResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tags [post]
func (c *TagController) Create(ctx *gin.Context) {
	var req dto.TagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tag, err := tagdomain.NewTag(req.Name, req.Color)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar tag", err.Error()))
		return
	}

	if err := c.tagRepo.Create(ctx, tag); err != nil {
		if err == repository.ErrTagDuplicate {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "tag já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar tag no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar tag", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

// List retorna todas as tags
// @Summary Listar tags
// @Description Retorna todas as tags cadastradas
// @Tags tags
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.TagResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tags [get]
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.tagRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar tags", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar tags", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagListResponse(tags))
}

// Update atualiza uma tag
// @Summary Atualizar tag
// @Description Atualiza o nome e a cor de uma tag
// @Tags tags
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da tag"
// @Param tag body dto.TagRequest true "Dados da tag"
// @Success 200 {object} dto.TagResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tags/{id} [put]
func (c *TagController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.TagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tag, err := c.tagRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrTagNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "tag não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar tag", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar tag", err.Error()))
		return
	}

	if err := tag.Update(req.Name, req.Color); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar tag", err.Error()))
		return
	}

	if err := c.tagRepo.Update(ctx, tag); err != nil {
		c.logger.Error("erro ao atualizar tag no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar tag", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

// Delete remove uma tag
// @Summary Excluir tag
// @Description Remove uma tag e suas associações com produtos e fornecedores
// @Tags tags
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da tag"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tags/{id} [delete]
func (c *TagController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.tagRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrTagNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "tag não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir tag", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir tag", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("tag excluída com sucesso", nil))
}
