package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	customerdomain "github.com/petrini31/bike-garage-manager/internal/domain/customer"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cliente body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	customer, err := customerdomain.NewCustomer(req.Name, req.Phone, req.Email, req.Address, req.Document)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, customer); err != nil {
		c.logger.Error("erro ao criar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes paginada
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [get]
func (c *CustomerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	customers, err := c.customerRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.customerRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, page, size))
}

// Search busca clientes por nome, usado pelo autocomplete do formulário de O.S.
// @Summary Buscar clientes por nome
// @Description Retorna os clientes cujo nome contém o termo informado
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string true "Termo de busca"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/search [get]
func (c *CustomerController) Search(ctx *gin.Context) {
	term := ctx.Query("q")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	customers, err := c.customerRepo.FindByName(ctx, term, size, offset)
	if err != nil {
		c.logger.Error("erro ao buscar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, len(customers), page, size))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param cliente body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	if err := customer.Update(req.Name, req.Phone, req.Email, req.Address, req.Document); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Update(ctx, customer); err != nil {
		c.logger.Error("erro ao atualizar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Description Remove um cliente do sistema
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.customerRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrCustomerNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente excluído com sucesso", nil))
}
