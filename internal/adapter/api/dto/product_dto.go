package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/product"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// ProductRequest representa a requisição de produto. SKU vazio faz o código
// ser gerado a partir do nome e do código de barras.
type ProductRequest struct {
	Name          string   `json:"nome" binding:"required"`
	SKU           string   `json:"sku"`
	Barcode       string   `json:"codigo_barras"`
	Quantity      int      `json:"quantidade"`
	MinStock      int      `json:"estoque_minimo"`
	PurchasePrice float64  `json:"preco_compra"`
	SalePrice     float64  `json:"preco_venda"`
	PhotoURL      string   `json:"foto_url"`
	Status        string   `json:"status"`
	SupplierID    *string  `json:"fornecedor_id"`
	TagIDs        []string `json:"tag_ids"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"nome"`
	SKU             string        `json:"sku"`
	Barcode         string        `json:"codigo_barras"`
	Quantity        int           `json:"quantidade"`
	MinStock        int           `json:"estoque_minimo"`
	PurchasePrice   float64       `json:"preco_compra"`
	SalePrice       float64       `json:"preco_venda"`
	Profit          float64       `json:"lucro"`
	SalePriceLabel  string        `json:"preco_venda_formatado"`
	PhotoURL        string        `json:"foto_url"`
	Status          string        `json:"status"`
	SupplierID      *string       `json:"fornecedor_id"`
	LineDescription string        `json:"descricao_item"`
	Tags            []TagResponse `json:"tags"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte a entidade para o DTO de resposta. A descrição
// de item pronta poupa o cliente de compor nome, SKU e código de barras.
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		Barcode:         p.Barcode,
		Quantity:        p.Quantity,
		MinStock:        p.MinStock,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		Profit:          p.Profit,
		SalePriceLabel:  formatter.FormatCurrency(p.SalePrice),
		PhotoURL:        p.PhotoURL,
		Status:          p.Status,
		SupplierID:      p.SupplierID,
		LineDescription: product.LineDescription(p),
		Tags:            ToTagResponses(p.Tags),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de entidades para o DTO de lista
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}

	return ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}
