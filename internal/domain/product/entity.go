package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/petrini31/bike-garage-manager/internal/domain/tag"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Status de estoque do produto. Atribuído manualmente pelo operador,
// não derivado da quantidade.
const (
	StatusInStock    = "Em Estoque"
	StatusLowStock   = "Estoque Baixo"
	StatusOutOfStock = "Sem Estoque"
)

// Product representa um produto do estoque da oficina
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"nome"`
	SKU           string    `json:"sku"`
	Barcode       string    `json:"codigo_barras"`
	Quantity      int       `json:"quantidade"`
	MinStock      int       `json:"estoque_minimo"`
	PurchasePrice float64   `json:"preco_compra"`
	SalePrice     float64   `json:"preco_venda"`
	Profit        float64   `json:"lucro"` // preco_venda - preco_compra, recalculado a cada gravação
	PhotoURL      string    `json:"foto_url"`
	Status        string    `json:"status"`
	SupplierID    *string   `json:"fornecedor_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Tags          []tag.Tag `json:"tags,omitempty"`
}

// NewProduct cria um novo produto. Quando o SKU não é informado, um código é
// gerado a partir do nome e do código de barras.
func NewProduct(name, sku, barcode string, quantity, minStock int, purchasePrice, salePrice float64, photoURL, status string, supplierID *string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if sku == "" {
		sku = GenerateSKU(name, barcode)
	}
	if status == "" {
		status = StatusInStock
	}

	now := time.Now()
	p := &Product{
		ID:            uuid.New().String(),
		Name:          name,
		SKU:           sku,
		Barcode:       barcode,
		Quantity:      quantity,
		MinStock:      minStock,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		PhotoURL:      photoURL,
		Status:        status,
		SupplierID:    supplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.RecalculateProfit()

	return p, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name, sku, barcode string, quantity, minStock int, purchasePrice, salePrice float64, photoURL, status string, supplierID *string) error {
	if name == "" {
		return ErrEmptyName
	}

	if sku == "" {
		sku = GenerateSKU(name, barcode)
	}

	p.Name = name
	p.SKU = sku
	p.Barcode = barcode
	p.Quantity = quantity
	p.MinStock = minStock
	p.PurchasePrice = purchasePrice
	p.SalePrice = salePrice
	p.PhotoURL = photoURL
	p.Status = status
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	p.RecalculateProfit()

	return nil
}

// RecalculateProfit recalcula o lucro quando ambos os preços estão presentes
func (p *Product) RecalculateProfit() {
	if p.PurchasePrice > 0 && p.SalePrice > 0 {
		p.Profit = p.SalePrice - p.PurchasePrice
	} else {
		p.Profit = 0
	}
}
