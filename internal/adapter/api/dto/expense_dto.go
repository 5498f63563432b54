package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/expense"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// ExpenseRequest representa a requisição de gasto
type ExpenseRequest struct {
	Name        string     `json:"nome" binding:"required"`
	Description string     `json:"descricao"`
	Category    string     `json:"categoria"`
	Value       float64    `json:"valor" binding:"required"`
	DueDate     *time.Time `json:"data_vencimento"`
	PaymentDate *time.Time `json:"data_pagamento"`
	Recurring   bool       `json:"recorrente"`
	Status      string     `json:"status"`
}

// ExpenseResponse representa a resposta de gasto
type ExpenseResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"nome"`
	Description string     `json:"descricao"`
	Category    string     `json:"categoria"`
	Value       float64    `json:"valor"`
	ValueLabel  string     `json:"valor_formatado"`
	DueDate     *time.Time `json:"data_vencimento"`
	PaymentDate *time.Time `json:"data_pagamento"`
	Recurring   bool       `json:"recorrente"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ExpenseListResponse representa a resposta de lista de gastos
type ExpenseListResponse struct {
	Items      []ExpenseResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToExpenseResponse converte a entidade para o DTO de resposta
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Value:       e.Value,
		ValueLabel:  formatter.FormatCurrency(e.Value),
		DueDate:     e.DueDate,
		PaymentDate: e.PaymentDate,
		Recurring:   e.Recurring,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converte uma lista de entidades para o DTO de lista
func ToExpenseListResponse(expenses []*expense.Expense, total, page, size int) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToExpenseResponse(e))
	}

	return ExpenseListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}
