package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/supplier"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Document string   `json:"cnpj" binding:"required"`
	Name     string   `json:"nome" binding:"required"`
	Phone    string   `json:"telefone"`
	Email    string   `json:"email"`
	Address  string   `json:"endereco"`
	City     string   `json:"cidade"`
	State    string   `json:"estado"`
	Active   *bool    `json:"ativo"`
	TagIDs   []string `json:"tag_ids"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID        string        `json:"id"`
	Document  string        `json:"cnpj"`
	Name      string        `json:"nome"`
	Phone     string        `json:"telefone"`
	Email     string        `json:"email"`
	Address   string        `json:"endereco"`
	City      string        `json:"cidade"`
	State     string        `json:"estado"`
	Active    bool          `json:"ativo"`
	Tags      []TagResponse `json:"tags"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items      []SupplierResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToSupplierResponse converte a entidade para o DTO de resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Document:  formatter.FormatCPFCNPJ(s.Document),
		Name:      s.Name,
		Phone:     formatter.FormatPhone(s.Phone),
		Email:     s.Email,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Active:    s.Active,
		Tags:      ToTagResponses(s.Tags),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de entidades para o DTO de lista
func ToSupplierListResponse(suppliers []*supplier.Supplier, total, page, size int) SupplierListResponse {
	items := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, ToSupplierResponse(s))
	}

	return SupplierListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}
