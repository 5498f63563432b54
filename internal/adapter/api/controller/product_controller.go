package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	productdomain "github.com/petrini31/bike-garage-manager/internal/domain/product"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
	"github.com/petrini31/bike-garage-manager/pkg/notifier"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	notifier    notifier.Sink
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, sink notifier.Sink, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		notifier:    sink,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no estoque, gerando o SKU quando não informado
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := productdomain.NewProduct(
		req.Name, req.SKU, req.Barcode, req.Quantity, req.MinStock,
		req.PurchasePrice, req.SalePrice, req.PhotoURL, req.Status,
		req.SupplierID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, product, req.TagIDs); err != nil {
		if err == repository.ErrProductDuplicate {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "produto já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		c.notifier.Failure("Erro ao cadastrar produto", product.Name)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	c.notifier.Success("Produto cadastrado", product.Name)
	ctx.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto com suas tags
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// List retorna a lista de produtos, com filtro opcional por nome, SKU ou
// código de barras
// @Summary Listar produtos
// @Description Retorna a lista de produtos paginada, filtrada pelo termo de busca
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Termo de busca (nome, SKU ou código de barras)"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [get]
func (c *ProductController) List(ctx *gin.Context) {
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

	products, err := c.productRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtos", err.Error()))
		return
	}

	if term != "" {
		products = productdomain.Filter(products, term)
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, page, size))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Atualiza os dados de um produto, recalculando lucro e substituindo tags
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	err = product.Update(
		req.Name, req.SKU, req.Barcode, req.Quantity, req.MinStock,
		req.PurchasePrice, req.SalePrice, req.PhotoURL, req.Status,
		req.SupplierID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, product, req.TagIDs); err != nil {
		c.logger.Error("erro ao atualizar produto no banco de dados", "error", err)
		c.notifier.Failure("Erro ao atualizar produto", product.Name)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	c.notifier.Success("Produto atualizado", product.Name)
	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Delete remove um produto
// @Summary Excluir produto
// @Description Remove um produto do estoque
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto excluído com sucesso", nil))
}
