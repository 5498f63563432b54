package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	supplierdomain "github.com/petrini31/bike-garage-manager/internal/domain/supplier"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor com suas tags
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	supplier, err := supplierdomain.NewSupplier(req.Document, req.Name, req.Phone, req.Email, req.Address, req.City, req.State)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	if req.Active != nil {
		supplier.Active = *req.Active
	}

	if err := c.supplierRepo.Create(ctx, supplier, req.TagIDs); err != nil {
		if err == repository.ErrSupplierDuplicate {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "fornecedor já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar fornecedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	created, err := c.supplierRepo.FindByID(ctx, supplier.ID)
	if err != nil {
		c.logger.Error("erro ao recarregar fornecedor", "error", err)
		ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(created))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Retorna os dados de um fornecedor com suas tags
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	supplier, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// List retorna a lista de fornecedores
// @Summary Listar fornecedores
// @Description Retorna a lista de fornecedores paginada
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.SupplierListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	suppliers, err := c.supplierRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	total, err := c.supplierRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, total, page, size))
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados de um fornecedor, substituindo suas tags
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	supplier, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	active := supplier.Active
	if req.Active != nil {
		active = *req.Active
	}

	if err := supplier.Update(req.Document, req.Name, req.Phone, req.Email, req.Address, req.City, req.State, active); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Update(ctx, supplier, req.TagIDs); err != nil {
		c.logger.Error("erro ao atualizar fornecedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	updated, err := c.supplierRepo.FindByID(ctx, supplier.ID)
	if err != nil {
		c.logger.Error("erro ao recarregar fornecedor", "error", err)
		ctx.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(updated))
}

// Delete remove um fornecedor
// @Summary Excluir fornecedor
// @Description Remove um fornecedor do sistema
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.supplierRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor excluído com sucesso", nil))
}
