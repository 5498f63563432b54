package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/customer"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name     string `json:"nome" binding:"required"`
	Phone    string `json:"telefone"`
	Email    string `json:"email"`
	Address  string `json:"endereco"`
	Document string `json:"cpf_cnpj"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID        string    `json:"id"`
	Number    int       `json:"numero_cliente"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
	Address   string    `json:"endereco"`
	Document  string    `json:"cpf_cnpj"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToCustomerResponse converte a entidade para o DTO de resposta. Telefone e
// documento saem já formatados para exibição.
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Number:    c.Number,
		Name:      c.Name,
		Phone:     formatter.FormatPhone(c.Phone),
		Email:     c.Email,
		Address:   c.Address,
		Document:  formatter.FormatCPFCNPJ(c.Document),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de entidades para o DTO de lista
func ToCustomerListResponse(customers []*customer.Customer, total, page, size int) CustomerListResponse {
	items := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, ToCustomerResponse(c))
	}

	return CustomerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}
