package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Câmara de Ar 29", "", "7891234567890", 10, 3, 12.50, 25.00, "", "", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "CÂM7890", p.SKU)
	assert.Equal(t, StatusInStock, p.Status)
	assert.Equal(t, 12.50, p.Profit)
}

func TestNewProduct_EmptyName(t *testing.T) {
	_, err := NewProduct("", "", "", 0, 0, 0, 0, "", "", nil)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewProduct_KeepsProvidedSKU(t *testing.T) {
	p, err := NewProduct("Corrente KMC", "KMC-X9", "", 5, 2, 50, 90, "", StatusLowStock, nil)
	require.NoError(t, err)

	assert.Equal(t, "KMC-X9", p.SKU)
	assert.Equal(t, StatusLowStock, p.Status)
}

func TestGenerateSKU_WithBarcode(t *testing.T) {
	assert.Equal(t, "PNE4567", GenerateSKU("Pneu Aro 26", "1234567"))
	assert.Equal(t, "PNEAB12", GenerateSKU("Pneu Aro 26", "ab12"))
}

func TestGenerateSKU_WithoutBarcode(t *testing.T) {
	sku := GenerateSKU("Pneu Aro 26", "")
	require.Len(t, sku, 7)
	assert.Equal(t, "PNE", sku[:3])
	for _, r := range sku[3:] {
		assert.Contains(t, skuCharset, string(r))
	}
}

func TestGenerateSKU_ShortName(t *testing.T) {
	sku := GenerateSKU("Ró", "999")
	assert.True(t, strings.HasPrefix(sku, "RÓ"))
	assert.True(t, strings.HasSuffix(sku, "999"))
}

func TestRecalculateProfit_MissingPrice(t *testing.T) {
	p, err := NewProduct("Graxa", "", "", 1, 1, 0, 15, "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Profit)

	require.NoError(t, p.Update("Graxa", p.SKU, "", 1, 1, 5, 15, "", StatusInStock, nil))
	assert.Equal(t, 10.0, p.Profit)
}

func TestFilter(t *testing.T) {
	produtos := []*Product{
		{Name: "Pneu Aro 26", SKU: "PNE1234", Barcode: "7891000"},
		{Name: "Câmara de Ar", SKU: "CAM5678", Barcode: "7892000"},
		{Name: "Corrente KMC", SKU: "COR9999", Barcode: ""},
	}

	assert.Len(t, Filter(produtos, ""), 3)
	assert.Len(t, Filter(produtos, "pneu"), 1)
	assert.Len(t, Filter(produtos, "cam"), 1)
	assert.Len(t, Filter(produtos, "7892"), 1)
	assert.Empty(t, Filter(produtos, "inexistente"))
}

func TestLineDescription(t *testing.T) {
	assert.Equal(t, "Pneu Aro 26 (SKU: PNE1234) (Código: 789)",
		LineDescription(&Product{Name: "Pneu Aro 26", SKU: "PNE1234", Barcode: "789"}))
	assert.Equal(t, "Pneu Aro 26 (SKU: PNE1234)",
		LineDescription(&Product{Name: "Pneu Aro 26", SKU: "PNE1234"}))
	assert.Equal(t, "Serviço avulso",
		LineDescription(&Product{Name: "Serviço avulso"}))
}
