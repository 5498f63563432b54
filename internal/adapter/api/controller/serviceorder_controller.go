package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
	"github.com/petrini31/bike-garage-manager/pkg/notifier"
)

// ServiceOrderController gerencia as requisições relacionadas a ordens de
// serviço. Os totais enviados pelo cliente são descartados: cada requisição
// de gravação passa pelo rascunho, que recalcula tudo.
type ServiceOrderController struct {
	orderRepo  serviceorder.Repository
	statusRepo serviceorder.StatusRepository
	notifier   notifier.Sink
	logger     logger.Logger
}

// NewServiceOrderController cria uma nova instância de ServiceOrderController
func NewServiceOrderController(orderRepo serviceorder.Repository, statusRepo serviceorder.StatusRepository, sink notifier.Sink, logger logger.Logger) *ServiceOrderController {
	return &ServiceOrderController{
		orderRepo:  orderRepo,
		statusRepo: statusRepo,
		notifier:   sink,
		logger:     logger,
	}
}

// applyRequest reproduz a requisição sobre um rascunho, item a item
func applyRequest(d *serviceorder.Draft, req dto.ServiceOrderRequest) error {
	if err := d.SetCustomerName(req.CustomerName); err != nil {
		return err
	}
	if err := d.SetCustomerContact(req.CustomerPhone, req.CustomerDocument, req.CustomerAddress); err != nil {
		return err
	}
	if err := d.SetStatus(req.StatusID); err != nil {
		return err
	}
	if err := d.SetNotes(req.Notes); err != nil {
		return err
	}
	if err := d.SetTotalDiscount(req.TotalDiscount); err != nil {
		return err
	}

	// o rascunho novo vem com um item semeado; remove tudo e reconstrói a
	// partir da requisição
	for len(d.Items()) > 0 {
		if err := d.RemoveItem(0); err != nil {
			return err
		}
	}

	for i, item := range req.Items {
		if err := d.AddItem(); err != nil {
			return err
		}
		if err := d.SetItemDescription(i, item.Description); err != nil {
			return err
		}
		if err := d.SetItemQuantity(i, item.Quantity); err != nil {
			return err
		}
		if err := d.SetItemUnitPrice(i, item.UnitPrice); err != nil {
			return err
		}
		if err := d.SetItemDiscount(i, item.Discount); err != nil {
			return err
		}
	}

	return nil
}

// Create cria uma nova ordem de serviço com seus itens
// @Summary Criar ordem de serviço
// @Description Cria uma O.S. com seus itens em uma única transação, recalculando os totais no servidor
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param ordem body dto.ServiceOrderRequest true "Dados da ordem de serviço"
// @Success 201 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico [post]
func (c *ServiceOrderController) Create(ctx *gin.Context) {
	var req dto.ServiceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	draft := serviceorder.NewDraft()
	if err := applyRequest(draft, req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar ordem de serviço", err.Error()))
		return
	}

	order, err := draft.Order()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ordem de serviço inválida", err.Error()))
		return
	}
	order.CustomerID = req.CustomerID

	if err := c.orderRepo.Create(ctx, order); err != nil {
		c.logger.Error("erro ao criar ordem de serviço no banco de dados", "error", err)
		c.notifier.Failure("Erro ao criar O.S.", order.CustomerName)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar ordem de serviço", err.Error()))
		return
	}

	c.notifier.Success("O.S. criada", fmt.Sprintf("O.S. Nº %d - %s", order.Number, order.CustomerName))
	ctx.JSON(http.StatusCreated, dto.ToServiceOrderResponse(order))
}

// Get retorna uma ordem de serviço pelo ID
// @Summary Buscar ordem de serviço
// @Description Retorna uma O.S. com seus itens e status
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de serviço"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico/{id} [get]
func (c *ServiceOrderController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	order, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar ordem de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordem de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// List retorna a lista de ordens de serviço
// @Summary Listar ordens de serviço
// @Description Retorna a lista de O.S. paginada, com filtro opcional por status
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status_id query string false "Filtrar por status"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ServiceOrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico [get]
func (c *ServiceOrderController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size
	statusID := ctx.Query("status_id")

	var orders []*serviceorder.Order
	var err error

	if statusID != "" {
		orders, err = c.orderRepo.ListByStatus(ctx, statusID, size, offset)
	} else {
		orders, err = c.orderRepo.List(ctx, size, offset)
	}
	if err != nil {
		c.logger.Error("erro ao listar ordens de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar ordens de serviço", err.Error()))
		return
	}

	total, err := c.orderRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar ordens de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar ordens de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceOrderListResponse(orders, total, page, size))
}

// Update edita uma ordem de serviço completa. Os itens enviados substituem os
// existentes na mesma transação.
// @Summary Atualizar ordem de serviço
// @Description Atualiza uma O.S. e reenvia seus itens, que substituem os anteriores
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de serviço"
// @Param ordem body dto.ServiceOrderRequest true "Dados da ordem de serviço"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico/{id} [put]
func (c *ServiceOrderController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ServiceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	existing, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar ordem de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar ordem de serviço", err.Error()))
		return
	}

	draft, err := serviceorder.DraftFromOrder(existing, serviceorder.ModeEdit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao abrir ordem para edição", err.Error()))
		return
	}

	if err := applyRequest(draft, req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar ordem de serviço", err.Error()))
		return
	}

	order, err := draft.Order()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ordem de serviço inválida", err.Error()))
		return
	}
	order.CustomerID = req.CustomerID

	if err := c.orderRepo.Update(ctx, order); err != nil {
		c.logger.Error("erro ao atualizar ordem de serviço no banco de dados", "error", err)
		c.notifier.Failure("Erro ao atualizar O.S.", fmt.Sprintf("O.S. Nº %d", order.Number))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar ordem de serviço", err.Error()))
		return
	}

	c.notifier.Success("O.S. atualizada", fmt.Sprintf("O.S. Nº %d - %s", order.Number, order.CustomerName))
	ctx.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// UpdateStatus troca o status de uma ordem de serviço
// @Summary Atualizar status da O.S.
// @Description Troca o status de uma ordem de serviço sem alterar os demais campos
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de serviço"
// @Param status body dto.ServiceOrderStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico/{id}/status [patch]
func (c *ServiceOrderController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ServiceOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if _, err := c.statusRepo.FindByID(ctx, req.StatusID); err != nil {
		if err == repository.ErrStatusNotFound {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar status", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar status", err.Error()))
		return
	}

	if err := c.orderRepo.UpdateStatus(ctx, id, req.StatusID); err != nil {
		if err == repository.ErrOrderNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar status da ordem", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado com sucesso", nil))
}

// Cancel cancela uma ordem de serviço registrando o motivo
// @Summary Cancelar O.S.
// @Description Move a ordem para o status Cancelada e registra o motivo
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de serviço"
// @Param cancelamento body dto.ServiceOrderCancelRequest true "Motivo do cancelamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico/{id}/cancelar [patch]
func (c *ServiceOrderController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ServiceOrderCancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	status, err := c.statusRepo.FindByName(ctx, serviceorder.StatusCancelled)
	if err != nil {
		c.logger.Error("erro ao buscar status de cancelamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar status de cancelamento", err.Error()))
		return
	}

	if err := c.orderRepo.Cancel(ctx, id, status.ID, req.Reason); err != nil {
		if err == repository.ErrOrderNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao cancelar ordem de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar ordem de serviço", err.Error()))
		return
	}

	c.notifier.Success("O.S. cancelada", req.Reason)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ordem de serviço cancelada", nil))
}

// Delete remove uma ordem de serviço e seus itens
// @Summary Excluir O.S.
// @Description Remove uma ordem de serviço e seus itens
// @Tags ordens-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de serviço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ordens-servico/{id} [delete]
func (c *ServiceOrderController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.orderRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrOrderNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ordem de serviço não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir ordem de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir ordem de serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ordem de serviço excluída", nil))
}
