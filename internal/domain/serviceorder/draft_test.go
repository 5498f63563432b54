package serviceorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrini31/bike-garage-manager/internal/domain/customer"
	"github.com/petrini31/bike-garage-manager/internal/domain/product"
)

func TestNewDraft_SeedsFirstItem(t *testing.T) {
	d := NewDraft()

	require.Len(t, d.Items(), 1)
	item := d.Items()[0]
	assert.Equal(t, 1, item.Number)
	assert.Equal(t, 1.0, item.Quantity)
	assert.Equal(t, 0.0, item.Total)
	assert.Equal(t, ModeCreate, d.Mode())
}

func TestDraft_ItemTotalRecalculatedOnEveryEdit(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.SetItemQuantity(0, 2))
	require.NoError(t, d.SetItemUnitPrice(0, 10))
	assert.Equal(t, 20.0, d.Items()[0].Total)

	require.NoError(t, d.SetItemDiscount(0, 3))
	assert.Equal(t, 17.0, d.Items()[0].Total)

	require.NoError(t, d.SetItemQuantity(0, 5))
	assert.Equal(t, 47.0, d.Items()[0].Total)
}

func TestDraft_RemoveItemRenumbers(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetItemDescription(0, "primeiro"))
	require.NoError(t, d.AddItem())
	require.NoError(t, d.SetItemDescription(1, "segundo"))
	require.NoError(t, d.AddItem())
	require.NoError(t, d.SetItemDescription(2, "terceiro"))

	require.NoError(t, d.RemoveItem(1))

	items := d.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Number)
	assert.Equal(t, "primeiro", items[0].Description)
	assert.Equal(t, 2, items[1].Number)
	assert.Equal(t, "terceiro", items[1].Description)

	assert.ErrorIs(t, d.RemoveItem(5), ErrItemOutOfRange)
}

func TestDraft_RemoveAllItems(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.RemoveItem(0))
	assert.Empty(t, d.Items())
	assert.Equal(t, 0.0, d.TotalAmount())
}

func TestDraft_SelectProduct(t *testing.T) {
	d := NewDraft()
	p := &product.Product{Name: "Corrente", SKU: "CR002", Barcode: "789", SalePrice: 89.90}

	require.NoError(t, d.SelectProduct(0, p))

	item := d.Items()[0]
	assert.Equal(t, "Corrente (SKU: CR002) (Código: 789)", item.Description)
	assert.Equal(t, 89.90, item.UnitPrice)
	assert.Equal(t, 89.90, item.Total)
}

func TestDraft_EndToEndTotals(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetCustomerName("João da Silva"))

	require.NoError(t, d.SetItemDescription(0, "Revisão geral"))
	require.NoError(t, d.SetItemQuantity(0, 1))
	require.NoError(t, d.SetItemUnitPrice(0, 50))

	require.NoError(t, d.AddItem())
	require.NoError(t, d.SetItemDescription(1, "Câmara de ar"))
	require.NoError(t, d.SetItemQuantity(1, 3))
	require.NoError(t, d.SetItemUnitPrice(1, 20))
	require.NoError(t, d.SetItemDiscount(1, 5))

	require.NoError(t, d.SetTotalDiscount(10))

	assert.Equal(t, 105.0, d.TotalAmount())
	assert.Equal(t, 95.0, d.FinalAmount())

	o, err := d.Order()
	require.NoError(t, err)
	assert.Equal(t, 105.0, o.TotalAmount)
	assert.Equal(t, 95.0, o.FinalAmount)
	require.Len(t, o.Items, 2)
	assert.Equal(t, o.ID, o.Items[0].OrderID)
}

func TestDraft_NegativeFinalAmountNotClamped(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetItemDescription(0, "Ajuste de freio"))
	require.NoError(t, d.SetItemUnitPrice(0, 30))
	require.NoError(t, d.SetTotalDiscount(50))

	assert.Equal(t, -20.0, d.FinalAmount())
}

func TestDraftFromOrder_RoundTrip(t *testing.T) {
	statusID := "status-1"
	original := &Order{
		ID:           "os-1",
		Number:       42,
		CustomerName: "Maria",
		StatusID:     &statusID,
		Items: []Item{
			{ID: "item-velho", Number: 1, Description: "Troca de pneu", Quantity: 2, UnitPrice: 10, Discount: 1, Total: 19},
		},
		TotalAmount:   19,
		TotalDiscount: 0,
		FinalAmount:   19,
	}

	d, err := DraftFromOrder(original, ModeEdit)
	require.NoError(t, err)

	o, err := d.Order()
	require.NoError(t, err)

	assert.Equal(t, "os-1", o.ID)
	assert.Equal(t, 42, o.Number)
	assert.Equal(t, 19.0, o.TotalAmount)
	assert.Equal(t, 19.0, o.FinalAmount)
	require.Len(t, o.Items, 1)
	assert.NotEqual(t, "item-velho", o.Items[0].ID)
	assert.Equal(t, "os-1", o.Items[0].OrderID)
}

func TestDraftFromOrder_ViewModeIsReadOnly(t *testing.T) {
	d, err := DraftFromOrder(&Order{CustomerName: "Maria"}, ModeView)
	require.NoError(t, err)

	assert.ErrorIs(t, d.AddItem(), ErrReadOnly)
	assert.ErrorIs(t, d.SetCustomerName("outro"), ErrReadOnly)
	assert.ErrorIs(t, d.SetItemQuantity(0, 2), ErrReadOnly)
	assert.ErrorIs(t, d.SetTotalDiscount(5), ErrReadOnly)

	_, err = d.Order()
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestDraftFromOrder_RejectsCreateMode(t *testing.T) {
	_, err := DraftFromOrder(&Order{}, ModeCreate)
	assert.ErrorIs(t, err, ErrInvalidDraftMode)
}

func TestDraft_SelectCustomerSnapshot(t *testing.T) {
	c, err := customer.NewCustomer("Pedro", "11987654321", "pedro@email.com", "Rua A, 10", "12345678900")
	require.NoError(t, err)

	d := NewDraft()
	require.NoError(t, d.SelectCustomer(c))
	require.NoError(t, d.SetItemDescription(0, "Lavagem"))

	o, err := d.Order()
	require.NoError(t, err)

	require.NotNil(t, o.CustomerID)
	assert.Equal(t, c.ID, *o.CustomerID)
	assert.Equal(t, "Pedro", o.CustomerName)
	assert.Equal(t, "11987654321", o.CustomerPhone)

	// alterar o cadastro depois não muda a ordem
	require.NoError(t, c.Update("Pedro Souza", "", "", "", ""))
	assert.Equal(t, "Pedro", o.CustomerName)
}

func TestDraft_OrderValidation(t *testing.T) {
	d := NewDraft()
	_, err := d.Order()
	assert.ErrorIs(t, err, ErrEmptyCustomerName)

	require.NoError(t, d.SetCustomerName("João"))
	_, err = d.Order()
	assert.ErrorIs(t, err, ErrNoItems)

	require.NoError(t, d.SetItemDescription(0, "Regulagem de câmbio"))
	_, err = d.Order()
	assert.NoError(t, err)
}

func TestDraft_OrderDropsBlankItems(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetCustomerName("João"))
	require.NoError(t, d.SetItemDescription(0, "Revisão"))
	require.NoError(t, d.SetItemUnitPrice(0, 80))
	require.NoError(t, d.AddItem())

	o, err := d.Order()
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Equal(t, 1, o.Items[0].Number)
	assert.Equal(t, 80.0, o.TotalAmount)
}
