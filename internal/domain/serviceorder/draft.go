package serviceorder

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petrini31/bike-garage-manager/internal/domain/customer"
	"github.com/petrini31/bike-garage-manager/internal/domain/product"
)

var (
	ErrReadOnly         = errors.New("rascunho somente leitura")
	ErrItemOutOfRange   = errors.New("índice de item inválido")
	ErrInvalidDraftMode = errors.New("modo de rascunho inválido")
)

// Mode define o comportamento do rascunho de O.S.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

// Draft mantém o estado de uma ordem de serviço em edição. Todos os totais
// são recalculados a cada alteração; o que o cliente HTTP envia como total é
// tratado apenas como sugestão e substituído pelo cálculo do rascunho.
type Draft struct {
	mode Mode

	orderID   string
	number    int
	createdAt time.Time

	customerID       *string
	customerName     string
	customerPhone    string
	customerDocument string
	customerAddress  string

	statusID      *string
	notes         string
	totalDiscount float64
	cancelReason  string

	items []Item
}

// NewDraft cria um rascunho em branco para uma nova O.S., já com o primeiro
// item semeado, como o formulário apresenta ao operador.
func NewDraft() *Draft {
	d := &Draft{mode: ModeCreate}
	d.items = append(d.items, Item{Number: 1, Quantity: 1})
	return d
}

// DraftFromOrder cria um rascunho a partir de uma ordem existente. Os
// identificadores dos itens são descartados: na gravação os itens são
// reinseridos com ids novos.
func DraftFromOrder(o *Order, mode Mode) (*Draft, error) {
	if mode != ModeEdit && mode != ModeView {
		return nil, ErrInvalidDraftMode
	}

	d := &Draft{
		mode:             mode,
		orderID:          o.ID,
		number:           o.Number,
		createdAt:        o.CreatedAt,
		customerID:       o.CustomerID,
		customerName:     o.CustomerName,
		customerPhone:    o.CustomerPhone,
		customerDocument: o.CustomerDocument,
		customerAddress:  o.CustomerAddress,
		statusID:         o.StatusID,
		notes:            o.Notes,
		totalDiscount:    o.TotalDiscount,
		cancelReason:     o.CancelReason,
	}

	for i, it := range o.Items {
		d.items = append(d.items, Item{
			Number:      i + 1,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Total:       it.Quantity*it.UnitPrice - it.Discount,
		})
	}

	return d, nil
}

// Mode retorna o modo do rascunho
func (d *Draft) Mode() Mode {
	return d.mode
}

// Items retorna uma cópia dos itens do rascunho
func (d *Draft) Items() []Item {
	items := make([]Item, len(d.items))
	copy(items, d.items)
	return items
}

func (d *Draft) writable() error {
	if d.mode == ModeView {
		return ErrReadOnly
	}
	return nil
}

func (d *Draft) checkIndex(i int) error {
	if err := d.writable(); err != nil {
		return err
	}
	if i < 0 || i >= len(d.items) {
		return ErrItemOutOfRange
	}
	return nil
}

// SelectCustomer copia os dados de contato do cliente para o rascunho e
// guarda o vínculo para rastreabilidade
func (d *Draft) SelectCustomer(c *customer.Customer) error {
	if err := d.writable(); err != nil {
		return err
	}

	id := c.ID
	d.customerID = &id
	d.customerName = c.Name
	d.customerPhone = c.Phone
	d.customerDocument = c.Document
	d.customerAddress = c.Address

	return nil
}

// SetCustomerName define o nome do cliente digitado à mão, sem vínculo
// com o cadastro
func (d *Draft) SetCustomerName(name string) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.customerID = nil
	d.customerName = name
	return nil
}

// SetCustomerContact define os dados de contato digitados à mão
func (d *Draft) SetCustomerContact(phone, document, address string) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.customerPhone = phone
	d.customerDocument = document
	d.customerAddress = address
	return nil
}

// SetStatus define o status da ordem
func (d *Draft) SetStatus(statusID string) error {
	if err := d.writable(); err != nil {
		return err
	}
	if statusID == "" {
		d.statusID = nil
		return nil
	}
	d.statusID = &statusID
	return nil
}

// SetNotes define as observações da ordem
func (d *Draft) SetNotes(notes string) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.notes = notes
	return nil
}

// SetTotalDiscount define o desconto aplicado sobre o total da ordem
func (d *Draft) SetTotalDiscount(v float64) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.totalDiscount = v
	return nil
}

// AddItem acrescenta um item em branco numerado ao final da lista
func (d *Draft) AddItem() error {
	if err := d.writable(); err != nil {
		return err
	}
	d.items = append(d.items, Item{Number: len(d.items) + 1, Quantity: 1})
	return nil
}

// RemoveItem remove o item na posição informada e renumera os restantes de 1
// a N. O rascunho aceita ficar sem itens; a exigência de pelo menos um item
// vale apenas na gravação.
func (d *Draft) RemoveItem(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}

	d.items = append(d.items[:i], d.items[i+1:]...)
	for n := range d.items {
		d.items[n].Number = n + 1
	}

	return nil
}

// SetItemDescription define a descrição do item
func (d *Draft) SetItemDescription(i int, description string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Description = description
	return nil
}

// SetItemQuantity define a quantidade e recalcula o total do item
func (d *Draft) SetItemQuantity(i int, quantity float64) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Quantity = quantity
	d.items[i].Recalculate()
	return nil
}

// SetItemUnitPrice define o preço unitário e recalcula o total do item
func (d *Draft) SetItemUnitPrice(i int, price float64) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].UnitPrice = price
	d.items[i].Recalculate()
	return nil
}

// SetItemDiscount define o desconto e recalcula o total do item
func (d *Draft) SetItemDiscount(i int, discount float64) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Discount = discount
	d.items[i].Recalculate()
	return nil
}

// SelectProduct preenche o item a partir de um produto do estoque: descrição
// composta com SKU e código de barras, preço unitário igual ao preço de venda
func (d *Draft) SelectProduct(i int, p *product.Product) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}

	d.items[i].Description = product.LineDescription(p)
	d.items[i].UnitPrice = p.SalePrice
	d.items[i].Recalculate()

	return nil
}

// TotalAmount retorna a soma dos totais dos itens
func (d *Draft) TotalAmount() float64 {
	var sum float64
	for _, it := range d.items {
		sum += it.Total
	}
	return sum
}

// FinalAmount retorna o valor final: total menos o desconto da ordem.
// Valores negativos não são corrigidos; é responsabilidade do operador.
func (d *Draft) FinalAmount() float64 {
	return d.TotalAmount() - d.totalDiscount
}

// Order valida o rascunho e materializa a ordem de serviço com os totais
// recalculados. Itens sem descrição são descartados antes da validação,
// como o formulário faz ao salvar.
func (d *Draft) Order() (*Order, error) {
	if err := d.writable(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(d.customerName) == "" {
		return nil, ErrEmptyCustomerName
	}

	var items []Item
	for _, it := range d.items {
		if strings.TrimSpace(it.Description) == "" {
			continue
		}
		it.Recalculate()
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	now := time.Now()
	o := &Order{
		ID:               d.orderID,
		Number:           d.number,
		CustomerID:       d.customerID,
		CustomerName:     strings.TrimSpace(d.customerName),
		CustomerPhone:    d.customerPhone,
		CustomerDocument: d.customerDocument,
		CustomerAddress:  d.customerAddress,
		StatusID:         d.statusID,
		Notes:            d.notes,
		TotalDiscount:    d.totalDiscount,
		CancelReason:     d.cancelReason,
		CreatedAt:        d.createdAt,
		UpdatedAt:        now,
	}

	if o.ID == "" {
		o.ID = uuid.New().String()
		o.CreatedAt = now
	}

	var total float64
	for n := range items {
		items[n].ID = newItemID()
		items[n].OrderID = o.ID
		items[n].Number = n + 1
		items[n].CreatedAt = now
		total += items[n].Total
	}

	o.Items = items
	o.TotalAmount = total
	o.FinalAmount = total - d.totalDiscount

	return o, nil
}
