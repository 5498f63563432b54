package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/revenue"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// RevenueRequest representa a requisição de receita manual
type RevenueRequest struct {
	Description string    `json:"descricao" binding:"required"`
	Value       float64   `json:"valor" binding:"required"`
	Date        time.Time `json:"data" binding:"required"`
}

// RevenueResponse representa a resposta de receita manual
type RevenueResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"descricao"`
	Value       float64   `json:"valor"`
	ValueLabel  string    `json:"valor_formatado"`
	Date        time.Time `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

// RevenueListResponse representa a resposta de lista de receitas manuais
type RevenueListResponse struct {
	Items []RevenueResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

// ToRevenueResponse converte a entidade para o DTO de resposta
func ToRevenueResponse(m *revenue.ManualRevenue) RevenueResponse {
	return RevenueResponse{
		ID:          m.ID,
		Description: m.Description,
		Value:       m.Value,
		ValueLabel:  formatter.FormatCurrency(m.Value),
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// ToRevenueListResponse converte uma lista de entidades para o DTO de lista
func ToRevenueListResponse(revenues []*revenue.ManualRevenue, total, page, size int) RevenueListResponse {
	items := make([]RevenueResponse, 0, len(revenues))
	for _, m := range revenues {
		items = append(items, ToRevenueResponse(m))
	}

	return RevenueListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}
