package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// ServiceOrderItemRequest representa um item da requisição de O.S. O total
// enviado é ignorado: o servidor recalcula a partir de quantidade, preço e
// desconto.
type ServiceOrderItemRequest struct {
	Description string  `json:"descricao" binding:"required"`
	Quantity    float64 `json:"quantidade"`
	UnitPrice   float64 `json:"preco_unitario"`
	Discount    float64 `json:"desconto"`
}

// ServiceOrderRequest representa a requisição de criação ou edição de O.S.
type ServiceOrderRequest struct {
	CustomerID       *string                   `json:"cliente_id"`
	CustomerName     string                    `json:"cliente_nome" binding:"required"`
	CustomerPhone    string                    `json:"cliente_telefone"`
	CustomerDocument string                    `json:"cliente_cpf_cnpj"`
	CustomerAddress  string                    `json:"cliente_endereco"`
	StatusID         string                    `json:"status_id"`
	Notes            string                    `json:"observacoes"`
	TotalDiscount    float64                   `json:"desconto_total"`
	Items            []ServiceOrderItemRequest `json:"itens" binding:"required,min=1"`
}

// ServiceOrderStatusRequest representa a troca rápida de status
type ServiceOrderStatusRequest struct {
	StatusID string `json:"status_id" binding:"required"`
}

// ServiceOrderCancelRequest representa o cancelamento de uma O.S.
type ServiceOrderCancelRequest struct {
	Reason string `json:"motivo_cancelamento" binding:"required"`
}

// ServiceOrderItemResponse representa um item na resposta de O.S.
type ServiceOrderItemResponse struct {
	ID          string  `json:"id"`
	Number      int     `json:"numero_item"`
	Description string  `json:"descricao"`
	Quantity    float64 `json:"quantidade"`
	UnitPrice   float64 `json:"preco_unitario"`
	Discount    float64 `json:"desconto"`
	Total       float64 `json:"total"`
	TotalLabel  string  `json:"total_formatado"`
}

// ServiceOrderResponse representa a resposta de O.S.
type ServiceOrderResponse struct {
	ID               string                     `json:"id"`
	Number           int                        `json:"numero_os"`
	CustomerID       *string                    `json:"cliente_id"`
	CustomerName     string                     `json:"cliente_nome"`
	CustomerPhone    string                     `json:"cliente_telefone"`
	CustomerDocument string                     `json:"cliente_cpf_cnpj"`
	CustomerAddress  string                     `json:"cliente_endereco"`
	Status           *StatusResponse            `json:"status"`
	Notes            string                     `json:"observacoes"`
	TotalAmount      float64                    `json:"valor_total"`
	TotalDiscount    float64                    `json:"desconto_total"`
	FinalAmount      float64                    `json:"valor_final"`
	FinalAmountLabel string                     `json:"valor_final_formatado"`
	CancelReason     string                     `json:"motivo_cancelamento"`
	Items            []ServiceOrderItemResponse `json:"itens"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// ServiceOrderListResponse representa a resposta de lista de O.S.
type ServiceOrderListResponse struct {
	Items      []ServiceOrderResponse `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	Size       int                    `json:"size"`
	TotalPages int                    `json:"total_pages"`
}

// ToServiceOrderResponse converte a entidade para o DTO de resposta
func ToServiceOrderResponse(o *serviceorder.Order) ServiceOrderResponse {
	items := make([]ServiceOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ServiceOrderItemResponse{
			ID:          it.ID,
			Number:      it.Number,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Total:       it.Total,
			TotalLabel:  formatter.FormatCurrency(it.Total),
		})
	}

	var status *StatusResponse
	if o.Status != nil {
		s := ToStatusResponse(o.Status)
		status = &s
	}

	return ServiceOrderResponse{
		ID:               o.ID,
		Number:           o.Number,
		CustomerID:       o.CustomerID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    formatter.FormatPhone(o.CustomerPhone),
		CustomerDocument: formatter.FormatCPFCNPJ(o.CustomerDocument),
		CustomerAddress:  o.CustomerAddress,
		Status:           status,
		Notes:            o.Notes,
		TotalAmount:      o.TotalAmount,
		TotalDiscount:    o.TotalDiscount,
		FinalAmount:      o.FinalAmount,
		FinalAmountLabel: formatter.FormatCurrency(o.FinalAmount),
		CancelReason:     o.CancelReason,
		Items:            items,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToServiceOrderListResponse converte uma lista de entidades para o DTO de lista
func ToServiceOrderListResponse(orders []*serviceorder.Order, total, page, size int) ServiceOrderListResponse {
	items := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, ToServiceOrderResponse(o))
	}

	return ServiceOrderListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}
